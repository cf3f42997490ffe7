package integrators

import "github.com/astrokit/astroprop/internal/astro"

// RK4 is the classical fourth-order Runge-Kutta scheme. Instances keep
// no state between steps, so a single RK4 may serve bodies advanced on
// separate goroutines.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(dyn astro.Dynamics, x astro.Vector, t, dt float64) astro.Vector {
	n := len(x)
	scratch := make(astro.Vector, n)

	k1 := dyn.Derive(x, t)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*0.5*k1[i]
	}
	k2 := dyn.Derive(scratch, t+dt*0.5)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*0.5*k2[i]
	}
	k3 := dyn.Derive(scratch, t+dt*0.5)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*k3[i]
	}
	k4 := dyn.Derive(scratch, t+dt)

	result := make(astro.Vector, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}

	return result
}
