package astro

import (
	"errors"
	"fmt"
)

// Domain errors for propagation operations.
var (
	// ErrInvalidConfiguration indicates non-finite or missing interval
	// bounds, or a negative fixed output interval.
	ErrInvalidConfiguration = errors.New("astro: invalid propagation configuration")

	// ErrUnknownBody indicates an operation referencing a body that was
	// never registered.
	ErrUnknownBody = errors.New("astro: unknown body")

	// ErrNoStateAvailable indicates a final-state or history query
	// before any successful propagation of that body.
	ErrNoStateAvailable = errors.New("astro: no propagated state available")

	// ErrDiverged indicates numerical failure during advancement
	// (NaN/Inf intermediate state or exhausted step budget).
	ErrDiverged = errors.New("astro: propagation diverged")
)

// PropagationError attributes a failure to a specific body and epoch.
type PropagationError struct {
	Body    *Body
	Time    float64
	Wrapped error
}

func (e *PropagationError) Error() string {
	name := "<nil>"
	if e.Body != nil {
		name = e.Body.Name
	}
	return fmt.Sprintf("body %q (t=%.6g): %v", name, e.Time, e.Wrapped)
}

func (e *PropagationError) Unwrap() error {
	return e.Wrapped
}
