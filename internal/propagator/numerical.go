package propagator

import (
	"context"
	"fmt"

	"github.com/astrokit/astroprop/internal/astro"
)

// DefaultMaxSteps bounds the number of integration steps per body per
// run before advancement is reported as diverged.
const DefaultMaxSteps = 10_000_000

// Numerical advances a body with a fixed-step integration scheme,
// landing exactly on every sample boundary and on the interval end.
// It keeps no mutable state of its own, so one instance may serve
// multiple bodies concurrently.
type Numerical struct {
	integ    astro.Integrator
	dt       float64
	maxSteps int
}

// NewNumerical wraps an integrator with step size dt (always positive;
// direction comes from the interval).
func NewNumerical(integ astro.Integrator, dt float64) *Numerical {
	return &Numerical{integ: integ, dt: dt, maxSteps: DefaultMaxSteps}
}

// SetMaxSteps overrides the per-run step budget.
func (n *Numerical) SetMaxSteps(limit int) { n.maxSteps = limit }

// Advance implements the Advancer contract: monotonic time progression
// in the interval's direction, samples recorded at every fixed output
// grid point, end boundary always recorded as the final state. A
// degenerate interval records the initial state unchanged.
func (n *Numerical) Advance(ctx context.Context, body *astro.Body, pd *Container, iv Interval, rec *BodyRecorder) error {
	if n.integ == nil || n.dt <= 0 {
		return fmt.Errorf("%w: numerical advancer needs an integrator and a positive step size", astro.ErrInvalidConfiguration)
	}
	dyn := pd.Dynamics()
	if dyn == nil {
		return &astro.PropagationError{
			Body:    body,
			Time:    iv.Start(),
			Wrapped: fmt.Errorf("%w: no dynamics assigned", astro.ErrInvalidConfiguration),
		}
	}
	init, ok := pd.InitialState()
	if !ok {
		return &astro.PropagationError{
			Body:    body,
			Time:    iv.Start(),
			Wrapped: fmt.Errorf("%w: no initial state set", astro.ErrInvalidConfiguration),
		}
	}

	x := init.Vector.Clone()
	start, end := iv.Start(), iv.End()

	if start == end {
		s := astro.NewState(end, x)
		if iv.SamplingEnabled() {
			rec.Sample(s)
		}
		rec.Finish(s)
		return nil
	}

	grid := iv.SampleTimes()
	targets := grid
	if len(targets) > 0 && targets[0] == start {
		rec.Sample(astro.NewState(start, x))
		targets = targets[1:]
	}
	if len(grid) == 0 {
		// No fixed sampling: advance straight to the end boundary.
		targets = []float64{end}
	}

	dir := iv.Direction()
	t := start
	steps := 0
	for _, target := range targets {
		for dir*(target-t) > timeEps(target) {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			h := dir * n.dt
			if dir*(t+h-target) > 0 {
				h = target - t
			}
			x = n.integ.Step(dyn, x, t, h)
			t += h
			steps++

			if !x.IsValid() {
				return &astro.PropagationError{Body: body, Time: t, Wrapped: astro.ErrDiverged}
			}
			if steps > n.maxSteps {
				return &astro.PropagationError{
					Body:    body,
					Time:    t,
					Wrapped: fmt.Errorf("%w: step budget %d exhausted", astro.ErrDiverged, n.maxSteps),
				}
			}
		}
		t = target
		if iv.SamplingEnabled() {
			rec.Sample(astro.NewState(target, x))
		}
	}

	rec.Finish(astro.NewState(end, x))
	return nil
}
