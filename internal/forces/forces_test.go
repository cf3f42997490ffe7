package forces

import (
	"math"
	"testing"

	"github.com/astrokit/astroprop/internal/astro"
	"github.com/astrokit/astroprop/internal/integrators"
)

func TestPointMassCircularOrbit(t *testing.T) {
	// Unit system: mu = 1, circular orbit of radius 1, speed 1.
	pm := NewPointMass(1)
	integ := integrators.NewRK4()

	x := astro.Vector{1, 0, 0, 0, 1, 0}
	e0 := pm.Energy(x)
	dt := 0.001

	for i := 0; i < 1000; i++ {
		x = integ.Step(pm, x, float64(i)*dt, dt)
	}

	radius := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	if math.Abs(radius-1) > 1e-6 {
		t.Errorf("circular orbit radius drifted: %v", radius)
	}
	if math.Abs(pm.Energy(x)-e0) > 1e-9 {
		t.Errorf("orbital energy drifted: %v -> %v", e0, pm.Energy(x))
	}

	// After t=1 rad of a unit circular orbit the position is (cos 1, sin 1).
	if math.Abs(x[0]-math.Cos(1)) > 1e-6 || math.Abs(x[1]-math.Sin(1)) > 1e-6 {
		t.Errorf("expected position (%v, %v), got (%v, %v)",
			math.Cos(1), math.Sin(1), x[0], x[1])
	}
}

func TestPointMassDerivativeShape(t *testing.T) {
	pm := NewPointMass(MuEarth)
	x := astro.Vector{7000e3, 0, 0, 0, 7.5e3, 0}

	dx := pm.Derive(x, 0)
	if dx[0] != x[3] || dx[1] != x[4] || dx[2] != x[5] {
		t.Error("kinematic rows must copy the velocity")
	}
	// Acceleration points back toward the origin.
	if dx[3] >= 0 {
		t.Errorf("expected inward acceleration, got %v", dx[3])
	}
	wantMag := MuEarth / (7000e3 * 7000e3)
	if math.Abs(math.Abs(dx[3])-wantMag) > wantMag*1e-12 {
		t.Errorf("acceleration magnitude: expected %v, got %v", wantMag, math.Abs(dx[3]))
	}
}

func TestJ2Perturbation(t *testing.T) {
	j2 := NewJ2Earth()

	// On the equator the J2 radial perturbation is outward-negative
	// (it strengthens the inward pull) and has no z component.
	x := astro.Vector{RadiusEarth + 400e3, 0, 0, 0, 7.67e3, 0}
	dx := j2.Derive(x, 0)

	if dx[0] != 0 || dx[1] != 0 || dx[2] != 0 {
		t.Error("J2 must contribute acceleration only")
	}
	if dx[3] >= 0 {
		t.Errorf("equatorial J2 acceleration must point inward, got %v", dx[3])
	}
	if dx[5] != 0 {
		t.Errorf("equatorial J2 must have no out-of-plane component, got %v", dx[5])
	}

	// J2 is a small fraction of the point-mass term at LEO.
	pm := NewPointMass(j2.Mu)
	ratio := math.Abs(dx[3]) / math.Abs(pm.Derive(x, 0)[3])
	if ratio > 0.01 {
		t.Errorf("J2/point-mass ratio implausibly large: %v", ratio)
	}
}

func TestCompositeSumsAccelerations(t *testing.T) {
	pm := NewPointMass(1)
	comp := NewComposite(pm, pm)

	x := astro.Vector{1, 0, 0, 0, 1, 0}
	single := pm.Derive(x, 0)
	combined := comp.Derive(x, 0)

	// Kinematics from the primary only, accelerations summed.
	for i := 0; i < 3; i++ {
		if combined[i] != single[i] {
			t.Errorf("kinematic row %d altered: %v != %v", i, combined[i], single[i])
		}
	}
	for i := 3; i < 6; i++ {
		if math.Abs(combined[i]-2*single[i]) > 1e-15 {
			t.Errorf("acceleration row %d: expected %v, got %v", i, 2*single[i], combined[i])
		}
	}
}

func TestHarmonicEnergy(t *testing.T) {
	h := NewHarmonic(2)
	x := astro.Vector{1, 0}

	dx := h.Derive(x, 0)
	if dx[0] != 0 || dx[1] != -4 {
		t.Errorf("expected derivative [0 -4], got %v", dx)
	}
	if e := h.Energy(x); math.Abs(e-2) > 1e-12 {
		t.Errorf("expected energy 2, got %v", e)
	}
}
