package forces

import "github.com/astrokit/astroprop/internal/astro"

// Composite sums the derivative contributions of several models acting
// on the same state vector. The first model determines the dimension
// and should carry the kinematic terms (velocity rows); perturbations
// like J2 contribute acceleration rows only.
type Composite struct {
	models []astro.Dynamics
}

func NewComposite(models ...astro.Dynamics) *Composite {
	return &Composite{models: models}
}

func (c *Composite) Dim() int {
	if len(c.models) == 0 {
		return 0
	}
	return c.models[0].Dim()
}

func (c *Composite) Derive(x astro.Vector, t float64) astro.Vector {
	dx := make(astro.Vector, len(x))
	for idx, m := range c.models {
		d := m.Derive(x, t)
		if idx == 0 {
			copy(dx, d)
			continue
		}
		// Perturbations add acceleration only; kinematics come from
		// the primary model.
		for i := len(x) / 2; i < len(x) && i < len(d); i++ {
			dx[i] += d[i]
		}
	}
	return dx
}
