package forces

import (
	"math"

	"github.com/astrokit/astroprop/internal/astro"
)

// J2 is the first zonal-harmonic perturbation of an oblate central
// body. It contributes acceleration only; compose it with PointMass.
type J2 struct {
	Mu     float64
	J2     float64
	Radius float64
}

func NewJ2Earth() *J2 {
	return &J2{Mu: MuEarth, J2: J2Earth, Radius: RadiusEarth}
}

func (j *J2) Dim() int { return 6 }

func (j *J2) Derive(x astro.Vector, t float64) astro.Vector {
	dx := make(astro.Vector, 6)

	r2 := x[0]*x[0] + x[1]*x[1] + x[2]*x[2]
	r := math.Sqrt(r2)
	if r < 1e-9 {
		return dx
	}

	z2r2 := x[2] * x[2] / r2
	f := -1.5 * j.J2 * j.Mu * j.Radius * j.Radius / (r2 * r2 * r)
	dx[3] = f * x[0] * (1 - 5*z2r2)
	dx[4] = f * x[1] * (1 - 5*z2r2)
	dx[5] = f * x[2] * (3 - 5*z2r2)
	return dx
}
