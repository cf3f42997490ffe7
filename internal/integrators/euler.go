package integrators

import "github.com/astrokit/astroprop/internal/astro"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn astro.Dynamics, x astro.Vector, t, dt float64) astro.Vector {
	dx := dyn.Derive(x, t)
	result := make(astro.Vector, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
