package input

import (
	"errors"
	"fmt"
)

// Sentinel error kinds mirroring the WebDriver BiDi error taxonomy. Every
// dispatch failure wraps exactly one of these so callers can match kinds
// with errors.Is without string comparison.
var (
	// ErrMoveTargetOutOfBounds is returned when resolved coordinates fall
	// outside the viewport. Raised at the offending tick; remaining ticks
	// are aborted and already-dispatched events stand.
	ErrMoveTargetOutOfBounds = errors.New("move target out of bounds")

	// ErrNoSuchFrame is returned when the browsing context was closed or
	// navigated away. Raised at the first state mutation that observes the
	// closed context.
	ErrNoSuchFrame = errors.New("no such frame")

	// ErrInvalidActionState is returned for caller-contract violations,
	// such as releasing a button that was never pressed.
	ErrInvalidActionState = errors.New("invalid action state")

	// ErrInvalidArgument is returned for malformed action parameters
	// before any tick executes.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ActionError annotates an error kind with the pointer and tick where the
// sequence failed. Tick is -1 when the failure precedes execution.
type ActionError struct {
	Kind    error
	Pointer PointerID
	Tick    int
	Message string
}

func (e *ActionError) Error() string {
	if e.Tick < 0 {
		return fmt.Sprintf("%v: pointer %d: %s", e.Kind, e.Pointer, e.Message)
	}
	return fmt.Sprintf("%v: pointer %d, tick %d: %s", e.Kind, e.Pointer, e.Tick, e.Message)
}

func (e *ActionError) Unwrap() error {
	return e.Kind
}

func newError(kind error, pointer PointerID, tick int, message string) *ActionError {
	return &ActionError{Kind: kind, Pointer: pointer, Tick: tick, Message: message}
}

// NewError builds an ActionError for the given sentinel kind.
func NewError(kind error, pointer PointerID, tick int, message string) *ActionError {
	return newError(kind, pointer, tick, message)
}

// KindOf returns the matching sentinel kind, or nil if err carries none.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrMoveTargetOutOfBounds,
		ErrNoSuchFrame,
		ErrInvalidActionState,
		ErrInvalidArgument,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
