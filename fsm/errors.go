package fsm

import (
	"errors"
	"fmt"
)

// Predefined error types.
var (
	// ErrNotStarted is returned by Dispatch before Start has run.
	ErrNotStarted = errors.New("machine not started")
	// ErrAlreadyStarted is returned by Start on a machine that already ran it.
	ErrAlreadyStarted = errors.New("machine already started")
	// ErrMachineStopped is returned by Dispatch once the machine has stopped.
	// It is benign: callers that treat stopped machines as a normal end of
	// life can discard it via errors.Is.
	ErrMachineStopped = errors.New("machine stopped")
	// ErrNilState indicates a ChangeTo directive carrying a nil state, or a
	// machine constructed without an initial state.
	ErrNilState = errors.New("nil state")
)

// StateError wraps an error with the state that produced it.
type StateError struct {
	State string
	Err   error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state %s: %v", e.State, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// WrapStateError wraps an error with state context.
func WrapStateError(state string, err error) error {
	if err == nil {
		return nil
	}

	return &StateError{
		State: state,
		Err:   err,
	}
}
