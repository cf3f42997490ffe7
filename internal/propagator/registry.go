package propagator

import (
	"fmt"

	"github.com/astrokit/astroprop/internal/astro"
)

// Container holds the per-body propagation data owned by the registry:
// the seeded initial state, the optional delegated advancer, the force
// model, and working storage for the stepping algorithm.
type Container struct {
	initial  *astro.State
	delegate Advancer
	dynamics astro.Dynamics

	// Scratch is working storage a stepping algorithm may keep between
	// steps. Owned by this container; never shared across bodies.
	Scratch astro.Vector
}

// InitialState returns a copy of the seeded initial state.
func (c *Container) InitialState() (astro.State, bool) {
	if c.initial == nil {
		return astro.State{}, false
	}
	return c.initial.Clone(), true
}

func (c *Container) Delegate() Advancer       { return c.delegate }
func (c *Container) Dynamics() astro.Dynamics { return c.dynamics }

// Registry associates each registered body with its propagation data.
// Lookup is by body identity; iteration follows insertion order so runs
// are deterministic.
type Registry struct {
	order   []*astro.Body
	entries map[*astro.Body]*Container
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[*astro.Body]*Container)}
}

// Add registers a body with an empty container. Re-adding an already
// registered body is a no-op and never resets its container.
func (r *Registry) Add(body *astro.Body) *Container {
	if c, ok := r.entries[body]; ok {
		return c
	}
	c := &Container{}
	r.entries[body] = c
	r.order = append(r.order, body)
	return c
}

// Get looks up a body's container.
func (r *Registry) Get(body *astro.Body) (*Container, bool) {
	c, ok := r.entries[body]
	return c, ok
}

// require returns the container or ErrUnknownBody.
func (r *Registry) require(body *astro.Body) (*Container, error) {
	c, ok := r.entries[body]
	if !ok {
		name := "<nil>"
		if body != nil {
			name = body.Name
		}
		return nil, fmt.Errorf("%w: %q", astro.ErrUnknownBody, name)
	}
	return c, nil
}

// SetDelegate assigns a delegated advancer for a registered body.
func (r *Registry) SetDelegate(body *astro.Body, adv Advancer) error {
	c, err := r.require(body)
	if err != nil {
		return err
	}
	c.delegate = adv
	return nil
}

// SetInitialState seeds or overwrites a registered body's initial
// state. The previous state, if any, is released.
func (r *Registry) SetInitialState(body *astro.Body, s astro.State) error {
	c, err := r.require(body)
	if err != nil {
		return err
	}
	clone := s.Clone()
	c.initial = &clone
	return nil
}

// SetDynamics assigns the force model used to derive a body's state.
func (r *Registry) SetDynamics(body *astro.Body, dyn astro.Dynamics) error {
	c, err := r.require(body)
	if err != nil {
		return err
	}
	c.dynamics = dyn
	return nil
}

// Bodies returns the registered bodies in insertion order.
func (r *Registry) Bodies() []*astro.Body {
	out := make([]*astro.Body, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int { return len(r.order) }
