package forces

import (
	"math"

	"github.com/astrokit/astroprop/internal/astro"
)

// Gravitational parameters and shape constants, SI units.
const (
	MuEarth     = 3.986004418e14
	MuSun       = 1.32712440018e20
	MuMoon      = 4.9048695e12
	RadiusEarth = 6378137.0
	J2Earth     = 1.08262668e-3
)

// PointMass is central-body gravity: a = -mu * r / |r|^3.
type PointMass struct {
	Mu float64
}

func NewPointMass(mu float64) *PointMass {
	return &PointMass{Mu: mu}
}

func (p *PointMass) Dim() int { return 6 }

func (p *PointMass) Derive(x astro.Vector, t float64) astro.Vector {
	dx := make(astro.Vector, 6)
	dx[0], dx[1], dx[2] = x[3], x[4], x[5]

	r := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	if r < 1e-9 {
		return dx
	}
	f := -p.Mu / (r * r * r)
	dx[3] = f * x[0]
	dx[4] = f * x[1]
	dx[5] = f * x[2]
	return dx
}

// Energy is the specific orbital energy v^2/2 - mu/r, conserved under
// pure point-mass gravity.
func (p *PointMass) Energy(x astro.Vector) float64 {
	r := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	v2 := x[3]*x[3] + x[4]*x[4] + x[5]*x[5]
	if r < 1e-9 {
		return 0
	}
	return v2/2 - p.Mu/r
}
