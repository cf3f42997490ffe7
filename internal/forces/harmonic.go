package forces

import "github.com/astrokit/astroprop/internal/astro"

// Harmonic is a one-dimensional oscillator x'' = -omega^2 x, state
// [x, v]. Its closed-form solution makes it the reference dynamics for
// integrator accuracy checks.
type Harmonic struct {
	Omega float64
}

func NewHarmonic(omega float64) *Harmonic {
	return &Harmonic{Omega: omega}
}

func (h *Harmonic) Dim() int { return 2 }

func (h *Harmonic) Derive(x astro.Vector, t float64) astro.Vector {
	return astro.Vector{x[1], -h.Omega * h.Omega * x[0]}
}

// Energy is the oscillator energy (v^2 + omega^2 x^2) / 2.
func (h *Harmonic) Energy(x astro.Vector) float64 {
	return (x[1]*x[1] + h.Omega*h.Omega*x[0]*x[0]) / 2
}
