package chart

import "errors"

// Predefined error types.
var (
	// ErrConfigNil indicates a nil configuration was supplied.
	ErrConfigNil = errors.New("config cannot be nil")
	// ErrNameRequired indicates that a configuration name is required.
	ErrNameRequired = errors.New("config name is required")
	// ErrInitialRequired indicates that an initial state is required.
	ErrInitialRequired = errors.New("initial state is required")
	// ErrStateRequired indicates that at least one state is required.
	ErrStateRequired = errors.New("at least one state is required")
	// ErrStateNameRequired indicates that a state name is required.
	ErrStateNameRequired = errors.New("state name is required")
	// ErrDuplicateState indicates that a duplicate state name was found.
	ErrDuplicateState = errors.New("duplicate state name")
	// ErrInitialNotFound indicates that the initial state does not exist.
	ErrInitialNotFound = errors.New("initial state does not exist")
	// ErrTransitionFromRequired indicates that a transition from state is required.
	ErrTransitionFromRequired = errors.New("transition from state is required")
	// ErrTransitionToRequired indicates that a transition to state is required.
	ErrTransitionToRequired = errors.New("transition to state is required")
	// ErrTransitionEventRequired indicates that a transition event name is required.
	ErrTransitionEventRequired = errors.New("transition event is required")
	// ErrTransitionFromNotFound indicates that a transition from state does not exist.
	ErrTransitionFromNotFound = errors.New("transition from state does not exist")
	// ErrTransitionToNotFound indicates that a transition to state does not exist.
	ErrTransitionToNotFound = errors.New("transition to state does not exist")
	// ErrDuplicateTransition indicates two transitions share a from state and event.
	ErrDuplicateTransition = errors.New("duplicate transition for state and event")
	// ErrTerminalOutgoing indicates a transition leaving a terminal state.
	ErrTerminalOutgoing = errors.New("terminal state cannot have outgoing transitions")
	// ErrHookStateNotFound indicates a hook attached to an undeclared state.
	ErrHookStateNotFound = errors.New("hook references undeclared state")
)
