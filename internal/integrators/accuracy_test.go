package integrators

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/astrokit/astroprop/internal/astro"
)

// oscillator is x'' = -x with solution x(t) = cos(t), v(t) = -sin(t)
// for x0 = [1, 0].
type oscillator struct{}

func (oscillator) Derive(x astro.Vector, t float64) astro.Vector {
	return astro.Vector{x[1], -x[0]}
}

func (oscillator) Dim() int { return 2 }

func integrate(integ astro.Integrator, x0 astro.Vector, dt float64, steps int) astro.Vector {
	x := x0.Clone()
	for i := 0; i < steps; i++ {
		x = integ.Step(oscillator{}, x, float64(i)*dt, dt)
	}
	return x
}

func energy(x astro.Vector) float64 {
	return (x[0]*x[0] + x[1]*x[1]) / 2
}

var _ = Describe("RK4", func() {
	It("tracks the harmonic oscillator closely", func() {
		x := integrate(NewRK4(), astro.Vector{1, 0}, 0.01, 100)
		Expect(x[0]).To(BeNumerically("~", math.Cos(1.0), 1e-4))
		Expect(x[1]).To(BeNumerically("~", -math.Sin(1.0), 1e-4))
	})

	It("steps backward when dt is negative", func() {
		forward := integrate(NewRK4(), astro.Vector{1, 0}, 0.01, 100)
		x := forward.Clone()
		for i := 0; i < 100; i++ {
			x = NewRK4().Step(oscillator{}, x, 1.0-float64(i)*0.01, -0.01)
		}
		Expect(x[0]).To(BeNumerically("~", 1.0, 1e-6))
		Expect(x[1]).To(BeNumerically("~", 0.0, 1e-6))
	})
})

var _ = Describe("Euler", func() {
	It("converges at first order", func() {
		x := integrate(NewEuler(), astro.Vector{1, 0}, 0.001, 1000)
		Expect(x[0]).To(BeNumerically("~", math.Cos(1.0), 1e-2))
	})
})

var _ = Describe("RK45", func() {
	It("is more accurate than RK4 at the same step size", func() {
		rk4 := integrate(NewRK4(), astro.Vector{1, 0}, 0.01, 100)
		rk45 := integrate(NewRK45(), astro.Vector{1, 0}, 0.01, 100)
		errRK4 := math.Abs(rk4[0] - math.Cos(1.0))
		errRK45 := math.Abs(rk45[0] - math.Cos(1.0))
		Expect(errRK45).To(BeNumerically("<=", errRK4))
		Expect(errRK45).To(BeNumerically("<", 1e-6))
	})

	It("proposes a positive next step size", func() {
		_, dtNew, err := NewRK45().StepAdaptive(oscillator{}, astro.Vector{1, 0}, 0, 0.1, 1e-6)
		Expect(err).NotTo(HaveOccurred())
		Expect(dtNew).To(BeNumerically(">", 0))
	})
})

var _ = Describe("Leapfrog", func() {
	It("keeps the oscillator energy bounded over many steps", func() {
		x0 := astro.Vector{1, 0}
		e0 := energy(x0)
		x := integrate(NewLeapfrog(), x0, 0.01, 1000)
		Expect(energy(x)).To(BeNumerically("~", e0, 1e-3))
	})
})

var _ = Describe("registry", func() {
	It("constructs every named scheme", func() {
		for _, name := range Names() {
			integ, err := New(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(integ).NotTo(BeNil())
		}
	})

	It("rejects unknown names", func() {
		_, err := New("rk99")
		Expect(err).To(HaveOccurred())
	})
})
