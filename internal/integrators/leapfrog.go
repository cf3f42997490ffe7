package integrators

import "github.com/astrokit/astroprop/internal/astro"

// Leapfrog is a symplectic kick-drift-kick scheme for states laid out
// as [positions..., velocities...]. Its bounded energy error makes it
// the better choice for long orbital arcs.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(dyn astro.Dynamics, x astro.Vector, t, dt float64) astro.Vector {
	n := len(x)
	half := n / 2

	scratch := make(astro.Vector, n)
	result := make(astro.Vector, n)

	dx := dyn.Derive(x, t)
	halfDt := dt * 0.5

	for i := 0; i < half; i++ {
		scratch[half+i] = x[half+i] + dx[half+i]*halfDt
	}

	for i := 0; i < half; i++ {
		result[i] = x[i] + scratch[half+i]*dt
		scratch[i] = result[i]
	}

	dxNew := dyn.Derive(scratch, t+dt)

	for i := 0; i < half; i++ {
		result[half+i] = scratch[half+i] + dxNew[half+i]*halfDt
	}

	return result
}
