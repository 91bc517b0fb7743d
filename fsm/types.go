package fsm

import (
	"context"
	"fmt"
)

// State is the capability contract every state of a machine implements.
// C is the caller-defined context shared by all states of one machine;
// E is the caller-defined event type driving transitions.
//
// For a given state instance the callbacks run in the order
// OnEnter -> (OnEvent)* -> OnExit. If OnEnter itself requests a change
// or a stop, the state is exited before any event is delivered to it.
//
// The context.Context parameter carries tracing and log correlation only.
// The engine is synchronous; callbacks run to completion on the calling
// goroutine before Start or Dispatch returns.
type State[C, E any] interface {
	// OnEnter is invoked once when the state becomes active, before any
	// event is processed. It may request an immediate transition, which
	// guards against entering a state whose precondition already failed.
	OnEnter(ctx context.Context, fc *C) Directive[C, E]

	// OnEvent is invoked once per event delivered while this state is
	// active. An event irrelevant to the state should resolve to Stay,
	// not an error, unless the domain defines otherwise.
	OnEvent(ctx context.Context, fc *C, event E) Directive[C, E]

	// OnExit is invoked exactly once, immediately before the state is
	// replaced or the machine stops. No directive is solicited here;
	// exit is for cleanup and side effects only.
	OnExit(ctx context.Context, fc *C)
}

// Interceptor observes every event before the active state does. If it
// returns a change or stop directive the active state's OnEvent is skipped
// for that event; a Stay directive lets the event fall through.
type Interceptor[C, E any] interface {
	OnEvent(ctx context.Context, fc *C, event E) Directive[C, E]
}

// InterceptorFunc adapts a function to the Interceptor interface.
type InterceptorFunc[C, E any] func(ctx context.Context, fc *C, event E) Directive[C, E]

func (f InterceptorFunc[C, E]) OnEvent(ctx context.Context, fc *C, event E) Directive[C, E] {
	return f(ctx, fc, event)
}

// Named is implemented by states that want a stable name in logs, metrics
// and spans. States without it are labeled by their dynamic type.
type Named interface {
	Name() string
}

// StateName returns the observability label for a state value.
func StateName(s any) string {
	if s == nil {
		return "<none>"
	}

	if named, ok := s.(Named); ok {
		return named.Name()
	}

	return fmt.Sprintf("%T", s)
}
