package propagator

import (
	"context"
	"errors"
	"sync"

	"github.com/astrokit/astroprop/internal/astro"
)

// PropagateParallel advances every registered body on its own
// goroutine. The contract is the same as Propagate; it is only valid
// when the bodies' dynamics are decoupled. Each worker operates
// exclusively on its own registry entry and its own history slot; the
// interval configuration is read-only for the duration of the run.
// Observers registered with AddObserver are invoked from multiple
// goroutines and must be safe for concurrent use.
func (p *Propagator) PropagateParallel(ctx context.Context) error {
	if err := p.validate(); err != nil {
		return err
	}

	bodies := p.registry.Bodies()

	// All recorder map mutation happens up front, before any worker
	// starts; workers only write through their own BodyRecorder.
	recs := make([]*BodyRecorder, len(bodies))
	for i, body := range bodies {
		recs[i] = p.recorder.begin(body, p.observers)
	}

	errs := make([]error, len(bodies))
	var wg sync.WaitGroup
	for i, body := range bodies {
		wg.Add(1)
		go func(idx int, b *astro.Body) {
			defer wg.Done()
			pd, _ := p.registry.Get(b)
			errs[idx] = p.advanceBody(ctx, b, pd, recs[idx])
		}(i, body)
	}
	wg.Wait()

	return errors.Join(errs...)
}
