package integrators

import (
	"fmt"
	"sort"

	"github.com/astrokit/astroprop/internal/astro"
)

var schemes = map[string]func() astro.Integrator{
	"euler":    func() astro.Integrator { return NewEuler() },
	"rk4":      func() astro.Integrator { return NewRK4() },
	"rk45":     func() astro.Integrator { return NewRK45() },
	"leapfrog": func() astro.Integrator { return NewLeapfrog() },
}

// New returns the integration scheme registered under name.
func New(name string) (astro.Integrator, error) {
	fn, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

// Names lists the available schemes, sorted.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
