// Package astro provides the core primitives for orbital state
// propagation:
//
//   - [Vector]: scalar-vector representation of a dynamical state
//   - [State]: a time-tagged state snapshot
//   - [Body]: an identity token for a propagated object
//   - [Dynamics]: interface for force models (dX/dt = f(X, t))
//   - [Integrator]: numerical stepping scheme interface
//
// # Identity
//
// Bodies are compared by pointer identity, never by value. Two bodies
// with identical names and states are distinct entries everywhere a
// Body is used as a key.
package astro
