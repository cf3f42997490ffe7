// Package propagator advances the dynamical state of registered bodies
// across a bounded time interval, recording state history at fixed
// output intervals.
//
// A [Propagator] is configured with an interval, an optional sampling
// cadence and a default advancement scheme, then bodies are registered
// and seeded with initial states:
//
//	prop := propagator.New(propagator.NewNumerical(integrators.NewRK4(), 60))
//	prop.AddBody(sat)
//	prop.SetDynamics(sat, forces.PointMass{Mu: forces.MuEarth})
//	prop.SetInitialState(sat, astro.NewState(0, x0))
//	prop.SetIntervalStart(0)
//	prop.SetIntervalEnd(86400)
//	prop.SetFixedOutputInterval(600)
//	err := prop.Propagate(ctx)
//
// Advancement of a single body can be delegated to a different
// [Advancer] (including another *Propagator) via SetPropagator; the
// delegating propagator still aggregates all histories.
//
// # Thread safety
//
// A Propagator is not safe for concurrent mutation. Propagate is a
// blocking call; PropagateParallel advances decoupled bodies on
// separate goroutines, each confined to its own registry entry and
// history slot.
package propagator
