package astro

import "math"

// Vector is a scalar-vector dynamical state, e.g. Cartesian
// position/velocity components.
type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func (v Vector) Add(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		if i < len(other) {
			result[i] = v[i] + other[i]
		} else {
			result[i] = v[i]
		}
	}
	return result
}

func (v Vector) Sub(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		if i < len(other) {
			result[i] = v[i] - other[i]
		} else {
			result[i] = v[i]
		}
	}
	return result
}

func (v Vector) Scale(factor float64) Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = v[i] * factor
	}
	return result
}

// State is a Vector snapshot tagged with the epoch it belongs to.
type State struct {
	Time   float64
	Vector Vector
}

func NewState(t float64, v Vector) State {
	return State{Time: t, Vector: v}
}

// Clone deep-copies the state so history entries own their vectors.
func (s State) Clone() State {
	return State{Time: s.Time, Vector: s.Vector.Clone()}
}

func (s State) IsValid() bool {
	return !math.IsNaN(s.Time) && !math.IsInf(s.Time, 0) && s.Vector.IsValid()
}

// Body identifies an object whose state is propagated. The propagation
// core never owns a Body; it only stores references to it.
type Body struct {
	Name string
}

func NewBody(name string) *Body {
	return &Body{Name: name}
}

// Dynamics computes the state derivative for a body. Implementations
// live outside the propagation core (force models).
type Dynamics interface {
	Derive(x Vector, t float64) Vector
	Dim() int
}

// Integrator advances a state vector across one step dt. Concrete
// integration schemes implement this.
type Integrator interface {
	Step(dyn Dynamics, x Vector, t, dt float64) Vector
}

// AdaptiveIntegrator additionally estimates local error and proposes
// the next step size.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(dyn Dynamics, x Vector, t, dt, tol float64) (Vector, float64, error)
}

// Observer receives every sampled state during a propagation run.
// Observers must not retain the vector without cloning it.
type Observer interface {
	OnSample(body *Body, s State)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(body *Body, s State)

func (f ObserverFunc) OnSample(body *Body, s State) { f(body, s) }
