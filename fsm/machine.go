// Package fsm is a generic finite-state-machine execution engine. Callers
// define states (any type implementing State), the data shared across them
// and the events that drive transitions; the Machine drives execution
// deterministically: entering states, dispatching events, exiting states and
// switching to new states, without hand-written transition dispatch logic.
//
// The engine is single-threaded, synchronous and cooperative: every callback
// runs to completion on the calling goroutine before Start or Dispatch
// returns, and the machine holds no locks. Callers with concurrent event
// producers must serialize access to Dispatch externally; the runner
// subpackage provides a mailbox that does exactly that.
package fsm

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
)

// Machine owns exactly one active state (by capability, not concrete
// identity) and one shared context value for its entire lifetime. It is
// created with an explicit initial state, which receives an OnEnter call
// when Start runs, before any event is dispatched.
type Machine[C, E any] struct {
	name        string
	id          string
	fc          *C
	current     State[C, E]
	interceptor Interceptor[C, E]
	logger      Logger
	started     bool
	stopped     bool
}

// New constructs a machine with the given initial state and shared context.
// Construction is cheap and never fails; OnEnter does not run until Start.
func New[C, E any](initial State[C, E], fc *C, opts ...Option[C, E]) *Machine[C, E] {
	m := &Machine[C, E]{
		id:      uuid.NewString(),
		fc:      fc,
		current: initial,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the machine name set via WithName.
func (m *Machine[C, E]) Name() string {
	return m.name
}

// ID returns the machine's generated identifier, used for telemetry
// correlation.
func (m *Machine[C, E]) ID() string {
	return m.id
}

// Context returns the shared context value passed into every callback.
func (m *Machine[C, E]) Context() *C {
	return m.fc
}

// Current returns the active state. Before Start it is the initial state;
// after a stop it is the last state that ran OnExit.
func (m *Machine[C, E]) Current() State[C, E] { //nolint:ireturn // The machine holds states by capability
	return m.current
}

// Stopped reports whether any callback returned Stop (or Stop was called
// explicitly) and the resulting exit has run.
func (m *Machine[C, E]) Stopped() bool {
	return m.stopped
}

// Start runs OnEnter on the initial state and applies its directive,
// cascading through further entry transitions until a state settles or the
// machine stops. It returns ErrAlreadyStarted on a second call and
// ErrNilState when the machine was constructed without an initial state.
func (m *Machine[C, E]) Start(ctx context.Context) (err error) {
	if m.started {
		return ErrAlreadyStarted
	}

	if m.stopped {
		return ErrMachineStopped
	}

	if m.current == nil {
		return ErrNilState
	}

	m.started = true

	ctx, span := startStartSpan(ctx, sanitizeMachine(m.name), m.id, StateName(m.current))

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "started")
		}

		span.End()
	}()

	if m.logger != nil {
		m.logger.StateEntered(ctx, m.name, StateName(m.current))
	}

	return m.apply(ctx, m.current.OnEnter(ctx, m.fc))
}

// Dispatch delivers one event to the active state's OnEvent and applies the
// returned directive using the same transition algorithm as Start. It
// returns ErrNotStarted before Start and ErrMachineStopped once the machine
// has stopped; the latter is benign and produces no callback invocations.
func (m *Machine[C, E]) Dispatch(ctx context.Context, event E) (err error) {
	if !m.started {
		return ErrNotStarted
	}

	if m.stopped {
		return ErrMachineStopped
	}

	stateName := StateName(m.current)

	ctx, span := startDispatchSpan(ctx, sanitizeMachine(m.name), m.id, stateName)

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "dispatched")
		}

		span.End()
	}()

	start := time.Now()

	defer func() {
		dispatchDuration.WithLabelValues(
			sanitizeMachine(m.name),
			stateName,
		).Observe(time.Since(start).Seconds())
	}()

	directive := m.routeEvent(ctx, event)

	eventsTotal.WithLabelValues(
		sanitizeMachine(m.name),
		stateName,
		directive.kind.String(),
	).Inc()

	if m.logger != nil {
		m.logger.EventDispatched(ctx, m.name, stateName, event, directive.kind.String())
	}

	return m.apply(ctx, directive)
}

// Stop halts the machine explicitly: the active state's OnExit runs and the
// machine is marked stopped. It is idempotent and safe to call at any point
// in the machine's life.
func (m *Machine[C, E]) Stop(ctx context.Context) {
	if m.stopped {
		return
	}

	// Without a Start no state was ever entered, so there is nothing to exit.
	if m.started {
		m.exitCurrent(ctx)
	}

	m.markStopped(ctx)
}

// routeEvent offers the event to the interceptor first; the active state
// only sees events the interceptor leaves alone.
func (m *Machine[C, E]) routeEvent(ctx context.Context, event E) Directive[C, E] {
	if m.interceptor != nil {
		directive := m.interceptor.OnEvent(ctx, m.fc, event)
		if !directive.IsStay() {
			return directive
		}
	}

	return m.current.OnEvent(ctx, m.fc, event)
}

// apply is the transition algorithm shared by Start and Dispatch. It runs
// as an explicit loop rather than recursion so pathological entry cascades
// cannot grow the stack; an entry cascade that never settles is a caller
// programming error, not a core fault.
func (m *Machine[C, E]) apply(ctx context.Context, directive Directive[C, E]) error {
	depth := 0

	defer func() {
		cascadeDepth.WithLabelValues(sanitizeMachine(m.name)).Observe(float64(depth))
	}()

	for {
		switch directive.kind {
		case kindStay:
			return nil

		case kindStop:
			m.exitCurrent(ctx)
			m.markStopped(ctx)

			return nil

		case kindChange:
			next := directive.next
			if next == nil {
				return WrapStateError(StateName(m.current), ErrNilState)
			}

			// Re-entering the active state is a no-op: no exit/enter churn.
			if sameState(next, m.current) {
				return nil
			}

			from := StateName(m.current)
			to := StateName(next)

			m.exitCurrent(ctx)

			m.current = next

			transitionsTotal.WithLabelValues(
				sanitizeMachine(m.name),
				from,
				to,
			).Inc()

			if m.logger != nil {
				m.logger.TransitionExecuted(ctx, m.name, from, to)
				m.logger.StateEntered(ctx, m.name, to)
			}

			depth++

			directive = next.OnEnter(ctx, m.fc)

		default:
			return nil
		}
	}
}

// exitCurrent runs OnExit on the active state exactly once per activation.
func (m *Machine[C, E]) exitCurrent(ctx context.Context) {
	if m.current == nil {
		return
	}

	m.current.OnExit(ctx, m.fc)

	if m.logger != nil {
		m.logger.StateExited(ctx, m.name, StateName(m.current))
	}
}

func (m *Machine[C, E]) markStopped(ctx context.Context) {
	m.stopped = true

	stopsTotal.WithLabelValues(
		sanitizeMachine(m.name),
		StateName(m.current),
	).Inc()

	if m.logger != nil {
		m.logger.MachineStopped(ctx, m.name, StateName(m.current))
	}
}

// sameState reports whether two state values are the same instance. States
// with uncomparable dynamic types never compare equal.
func sameState[C, E any](a, b State[C, E]) bool {
	if a == nil || b == nil {
		return false
	}

	if !reflect.TypeOf(a).Comparable() {
		return false
	}

	return a == b
}
