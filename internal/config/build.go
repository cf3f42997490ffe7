package config

import (
	"fmt"

	"github.com/astrokit/astroprop/internal/astro"
	"github.com/astrokit/astroprop/internal/forces"
	"github.com/astrokit/astroprop/internal/integrators"
	"github.com/astrokit/astroprop/internal/propagator"
)

// Build assembles a configured propagator from a scenario. The returned
// bodies are in scenario order and already registered, seeded and wired
// to the central body's force model. Bodies with their own integrator
// or step get a delegated numerical advancer.
func Build(scn *Scenario) (*propagator.Propagator, []*astro.Body, error) {
	integ, err := integrators.New(scn.Integrator)
	if err != nil {
		return nil, nil, err
	}
	if scn.Step <= 0 {
		return nil, nil, fmt.Errorf("scenario step must be positive, got %v", scn.Step)
	}

	prop := propagator.New(propagator.NewNumerical(integ, scn.Step))
	prop.SetIntervalStart(scn.Start)
	prop.SetIntervalEnd(scn.End)
	prop.SetFixedOutputInterval(scn.FixedOutputInterval)

	dyn, err := centralBodyDynamics(scn.CentralBody)
	if err != nil {
		return nil, nil, err
	}

	bodies := make([]*astro.Body, 0, len(scn.Bodies))
	for _, bc := range scn.Bodies {
		if bc.Name == "" {
			return nil, nil, fmt.Errorf("scenario body without a name")
		}
		if len(bc.InitialState) == 0 {
			return nil, nil, fmt.Errorf("body %q has no initial state", bc.Name)
		}
		if len(bc.InitialState) != dyn.Dim() {
			return nil, nil, fmt.Errorf("%w: body %q initial state has %d components, dynamics needs %d",
				astro.ErrInvalidConfiguration, bc.Name, len(bc.InitialState), dyn.Dim())
		}

		body := astro.NewBody(bc.Name)
		prop.AddBody(body)
		if err := prop.SetDynamics(body, dyn); err != nil {
			return nil, nil, err
		}
		state := astro.NewState(scn.Start, astro.Vector(bc.InitialState).Clone())
		if err := prop.SetInitialState(body, state); err != nil {
			return nil, nil, err
		}

		if bc.Integrator != "" || bc.Step > 0 {
			name := bc.Integrator
			if name == "" {
				name = scn.Integrator
			}
			step := bc.Step
			if step <= 0 {
				step = scn.Step
			}
			sub, err := integrators.New(name)
			if err != nil {
				return nil, nil, fmt.Errorf("body %q: %w", bc.Name, err)
			}
			if err := prop.SetPropagator(body, propagator.NewNumerical(sub, step)); err != nil {
				return nil, nil, err
			}
		}

		bodies = append(bodies, body)
	}

	return prop, bodies, nil
}

func centralBodyDynamics(cb CentralBody) (astro.Dynamics, error) {
	if cb.Mu <= 0 {
		return nil, fmt.Errorf("central body %q needs a positive gravitational parameter", cb.Name)
	}
	pm := forces.NewPointMass(cb.Mu)
	if cb.J2 != 0 {
		if cb.Radius <= 0 {
			return nil, fmt.Errorf("central body %q: J2 needs a positive radius", cb.Name)
		}
		return forces.NewComposite(pm, &forces.J2{Mu: cb.Mu, J2: cb.J2, Radius: cb.Radius}), nil
	}
	return pm, nil
}
