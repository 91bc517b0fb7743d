// Package fsmtest provides test doubles and assertions for machines built
// on the fsm package: a call log, a recording state wrapper and a scripted
// state whose directives are queued up front.
package fsmtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/amp-labs/fsmkit/fsm"
	"github.com/stretchr/testify/require"
)

// Log is an ordered record of lifecycle calls, e.g. "a.enter", "a.event(go)",
// "a.exit". Machines are single-threaded, so the log holds no lock; wrap
// dispatch in your own serialization (or use fsm/runner) before sharing one
// log between goroutines.
type Log struct {
	calls []string
}

// Calls returns the recorded calls in invocation order.
func (l *Log) Calls() []string {
	return l.calls
}

// Reset discards all recorded calls.
func (l *Log) Reset() {
	l.calls = nil
}

func (l *Log) add(call string) {
	l.calls = append(l.calls, call)
}

// Recorder wraps a state and records every callback into a Log before
// delegating. A nil inner state behaves like an inert state (Stay on
// everything).
type Recorder[C, E any] struct {
	name  string
	log   *Log
	inner fsm.State[C, E]
}

// Wrap creates a Recorder around inner, labeled with name in the log.
func Wrap[C, E any](name string, log *Log, inner fsm.State[C, E]) *Recorder[C, E] {
	return &Recorder[C, E]{
		name:  name,
		log:   log,
		inner: inner,
	}
}

func (r *Recorder[C, E]) Name() string {
	return r.name
}

func (r *Recorder[C, E]) OnEnter(ctx context.Context, fc *C) fsm.Directive[C, E] {
	r.log.add(r.name + ".enter")

	if r.inner == nil {
		return fsm.Stay[C, E]()
	}

	return r.inner.OnEnter(ctx, fc)
}

func (r *Recorder[C, E]) OnEvent(ctx context.Context, fc *C, event E) fsm.Directive[C, E] {
	r.log.add(fmt.Sprintf("%s.event(%v)", r.name, event))

	if r.inner == nil {
		return fsm.Stay[C, E]()
	}

	return r.inner.OnEvent(ctx, fc, event)
}

func (r *Recorder[C, E]) OnExit(ctx context.Context, fc *C) {
	r.log.add(r.name + ".exit")

	if r.inner != nil {
		r.inner.OnExit(ctx, fc)
	}
}

// Scripted is a state whose directives are dequeued from fixed scripts: one
// for OnEnter, one for OnEvent. Exhausted scripts yield Stay.
type Scripted[C, E any] struct {
	name   string
	enters []fsm.Directive[C, E]
	events []fsm.Directive[C, E]
}

// NewScripted creates a scripted state with empty scripts.
func NewScripted[C, E any](name string) *Scripted[C, E] {
	return &Scripted[C, E]{name: name}
}

// EnterReturns queues directives returned by successive OnEnter calls.
func (s *Scripted[C, E]) EnterReturns(directives ...fsm.Directive[C, E]) *Scripted[C, E] {
	s.enters = append(s.enters, directives...)

	return s
}

// EventReturns queues directives returned by successive OnEvent calls.
func (s *Scripted[C, E]) EventReturns(directives ...fsm.Directive[C, E]) *Scripted[C, E] {
	s.events = append(s.events, directives...)

	return s
}

func (s *Scripted[C, E]) Name() string {
	return s.name
}

func (s *Scripted[C, E]) OnEnter(ctx context.Context, fc *C) fsm.Directive[C, E] {
	return pop(&s.enters)
}

func (s *Scripted[C, E]) OnEvent(ctx context.Context, fc *C, event E) fsm.Directive[C, E] {
	return pop(&s.events)
}

func (s *Scripted[C, E]) OnExit(ctx context.Context, fc *C) {}

func pop[C, E any](queue *[]fsm.Directive[C, E]) fsm.Directive[C, E] {
	if len(*queue) == 0 {
		return fsm.Stay[C, E]()
	}

	head := (*queue)[0]
	*queue = (*queue)[1:]

	return head
}

// RequireSequence asserts the log holds exactly the expected calls, in order.
func RequireSequence(t *testing.T, log *Log, expected ...string) {
	t.Helper()

	require.Equal(t, expected, log.Calls())
}

// stoppable is satisfied by *fsm.Machine for any type parameters.
type stoppable interface {
	Stopped() bool
}

// RequireStopped asserts the machine has reached its stopped condition.
func RequireStopped(t *testing.T, m stoppable) {
	t.Helper()

	require.True(t, m.Stopped(), "machine should be stopped")
}

// RequireRunning asserts the machine has not stopped.
func RequireRunning(t *testing.T, m stoppable) {
	t.Helper()

	require.False(t, m.Stopped(), "machine should not be stopped")
}
