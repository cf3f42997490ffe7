package propagator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/astrokit/astroprop/internal/astro"
)

// Advancer is the abstract propagation operation: advance one body's
// state across the interval, sampling into the recorder. Concrete
// integration schemes implement it (see Numerical), and *Propagator
// implements it too so propagators compose.
type Advancer interface {
	Advance(ctx context.Context, body *astro.Body, pd *Container, iv Interval, rec *BodyRecorder) error
}

// Propagator owns the interval configuration, the body registry and the
// history recorder, and drives an Advancer per body.
type Propagator struct {
	iv        Interval
	registry  *Registry
	recorder  *Recorder
	scheme    Advancer
	observers []astro.Observer
}

// New creates a propagator whose bodies are advanced by scheme unless a
// per-body delegate is assigned.
func New(scheme Advancer) *Propagator {
	return &Propagator{
		registry: NewRegistry(),
		recorder: newRecorder(),
		scheme:   scheme,
	}
}

// Interval configuration. Values are validated at Propagate time, not
// at set time, so boundaries can be reconfigured in any order.

func (p *Propagator) SetIntervalStart(t float64) { p.iv.SetStart(t) }
func (p *Propagator) SetIntervalEnd(t float64)   { p.iv.SetEnd(t) }
func (p *Propagator) IntervalStart() float64     { return p.iv.Start() }
func (p *Propagator) IntervalEnd() float64       { return p.iv.End() }

// SetFixedOutputInterval sets the cadence at which intermediate states
// are sampled into history. Zero disables fixed sampling; negative or
// non-finite values are rejected when Propagate runs.
func (p *Propagator) SetFixedOutputInterval(interval float64) {
	p.iv.SetFixedOutput(interval)
}

func (p *Propagator) FixedOutputInterval() float64 { return p.iv.FixedOutput() }

// AddBody registers a body to be propagated. Idempotent: re-adding
// never resets an assigned initial state or delegate.
func (p *Propagator) AddBody(body *astro.Body) {
	p.registry.Add(body)
}

// SetPropagator delegates advancement of one registered body to adv.
func (p *Propagator) SetPropagator(body *astro.Body, adv Advancer) error {
	return p.registry.SetDelegate(body, adv)
}

// SetInitialState seeds the state a body's advancement starts from.
func (p *Propagator) SetInitialState(body *astro.Body, s astro.State) error {
	return p.registry.SetInitialState(body, s)
}

// SetDynamics assigns the force model for a registered body.
func (p *Propagator) SetDynamics(body *astro.Body, dyn astro.Dynamics) error {
	return p.registry.SetDynamics(body, dyn)
}

// AddObserver registers a sampling observer notified for every recorded
// sample of every body.
func (p *Propagator) AddObserver(o astro.Observer) {
	p.observers = append(p.observers, o)
}

// Bodies returns the registered bodies in insertion order.
func (p *Propagator) Bodies() []*astro.Body { return p.registry.Bodies() }

// validate checks the whole configuration before any stepping begins,
// so malformed setups fail without producing partial history.
func (p *Propagator) validate() error {
	if err := p.iv.Validate(); err != nil {
		return err
	}
	for _, body := range p.registry.Bodies() {
		pd, _ := p.registry.Get(body)
		if _, ok := pd.InitialState(); !ok {
			return &astro.PropagationError{
				Body:    body,
				Time:    p.iv.Start(),
				Wrapped: fmt.Errorf("%w: no initial state set", astro.ErrInvalidConfiguration),
			}
		}
		if pd.Delegate() == nil && p.scheme == nil {
			return &astro.PropagationError{
				Body:    body,
				Time:    p.iv.Start(),
				Wrapped: fmt.Errorf("%w: no advancement scheme or delegate", astro.ErrInvalidConfiguration),
			}
		}
	}
	return nil
}

// Propagate advances every registered body from the interval start to
// the interval end, blocking until all bodies complete or fail.
// Divergence of one body does not abort the others; their results are
// preserved and the returned error attributes each failure to its body.
func (p *Propagator) Propagate(ctx context.Context) error {
	if err := p.validate(); err != nil {
		return err
	}

	// Reset every body's run before advancing any, so an early abort
	// never leaves some bodies holding results from a previous run.
	bodies := p.registry.Bodies()
	recs := make([]*BodyRecorder, len(bodies))
	for i, body := range bodies {
		recs[i] = p.recorder.begin(body, p.observers)
	}

	var errs []error
	for i, body := range bodies {
		pd, _ := p.registry.Get(body)
		if err := p.advanceBody(ctx, body, pd, recs[i]); err != nil {
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
		}
	}
	return errors.Join(errs...)
}

func (p *Propagator) advanceBody(ctx context.Context, body *astro.Body, pd *Container, rec *BodyRecorder) error {
	adv := pd.Delegate()
	if adv == nil {
		adv = p.scheme
	}
	return adv.Advance(ctx, body, pd, p.iv, rec)
}

// Advance lets a Propagator serve as the delegated advancer for a
// single body inside another propagator's run: the delegating
// propagator's interval and recorder are used, so its history recorder
// aggregates the delegate's samples.
func (p *Propagator) Advance(ctx context.Context, body *astro.Body, pd *Container, iv Interval, rec *BodyRecorder) error {
	if p.scheme == nil {
		return &astro.PropagationError{
			Body:    body,
			Time:    iv.Start(),
			Wrapped: fmt.Errorf("%w: delegated propagator has no scheme", astro.ErrInvalidConfiguration),
		}
	}
	return p.scheme.Advance(ctx, body, pd, iv, rec)
}

// FinalState returns the state at the interval end boundary from the
// most recently completed run for the body.
func (p *Propagator) FinalState(body *astro.Body) (astro.State, error) {
	if _, err := p.registry.require(body); err != nil {
		return astro.State{}, err
	}
	run, ok := p.recorder.get(body)
	if !ok || run.final == nil {
		return astro.State{}, fmt.Errorf("%w: body %q has not been propagated", astro.ErrNoStateAvailable, body.Name)
	}
	return run.final.Clone(), nil
}

// PropagationHistory returns the states sampled at fixed output
// intervals during the most recent run. The history is empty when no
// fixed output interval was configured or the body was never
// propagated.
func (p *Propagator) PropagationHistory(body *astro.Body) (*History, error) {
	if _, err := p.registry.require(body); err != nil {
		return nil, err
	}
	run, ok := p.recorder.get(body)
	if !ok {
		return newHistory(), nil
	}
	return run.history, nil
}

// Describe renders a human-readable summary of the configuration for
// diagnostics. The format is free-form and not load-bearing.
func (p *Propagator) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "propagation interval: [%g, %g]\n", p.iv.Start(), p.iv.End())
	if p.iv.SamplingEnabled() {
		fmt.Fprintf(&b, "fixed output interval: %g\n", p.iv.FixedOutput())
	} else {
		b.WriteString("fixed output interval: disabled\n")
	}
	fmt.Fprintf(&b, "registered bodies: %d\n", p.registry.Len())
	for _, body := range p.registry.Bodies() {
		pd, _ := p.registry.Get(body)
		mode := "own scheme"
		if pd.Delegate() != nil {
			mode = "delegated"
		}
		seeded := "unseeded"
		if _, ok := pd.InitialState(); ok {
			seeded = "seeded"
		}
		fmt.Fprintf(&b, "  - %s (%s, %s)\n", body.Name, mode, seeded)
	}
	return b.String()
}
