// Package runner serializes concurrent event delivery into a single-owner
// machine. The fsm core is deliberately lock-free and single-threaded;
// callers with multiple event producers feed one Runner instead, which owns
// the machine on one goroutine and processes a mailbox sequentially, with
// panic recovery around state callbacks.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/amp-labs/fsmkit/fsm"
	"go.uber.org/atomic"
)

var (
	// ErrRunnerStopped is returned when submitting to a stopped runner.
	ErrRunnerStopped = errors.New("runner is stopped")
	// ErrCallbackPanic is returned when a state callback panics during
	// event processing.
	ErrCallbackPanic = errors.New("panic in state callback")
)

// envelope carries one event through the mailbox. A nil result channel
// means fire-and-forget.
type envelope[E any] struct {
	event  E
	result chan error
}

// Runner owns a machine on a single goroutine and delivers events to it
// sequentially from a mailbox.
type Runner[C, E any] struct {
	machine *fsm.Machine[C, E]
	inbox   chan envelope[E]
	dead    atomic.Bool
	wg      sync.WaitGroup
}

// New creates a runner for the given machine. depth is the mailbox buffer
// size (0 for unbuffered). The machine must not be touched directly once
// the runner is started.
func New[C, E any](machine *fsm.Machine[C, E], depth int) *Runner[C, E] {
	return &Runner[C, E]{
		machine: machine,
		inbox:   make(chan envelope[E], depth),
	}
}

// Machine returns the owned machine. Callers may inspect it (Stopped,
// Context) but must not Dispatch on it directly while the runner is alive.
func (r *Runner[C, E]) Machine() *fsm.Machine[C, E] {
	return r.machine
}

// Run starts the machine and begins consuming the mailbox. The machine's
// Start runs synchronously, so entry-cascade errors surface here; if the
// initial entry cascade already stops the machine, the runner stops with
// it. The runner also stops when ctx is canceled or Stop is called.
func (r *Runner[C, E]) Run(ctx context.Context) error {
	err := r.machine.Start(ctx)
	if err != nil {
		r.dead.Store(true)

		return err
	}

	if r.machine.Stopped() {
		r.Stop()
	}

	r.wg.Add(1)

	aliveRunners.WithLabelValues(r.machineLabel()).Inc()

	go r.loop(ctx)

	return nil
}

// Dispatch enqueues an event without waiting for it to be processed.
// It returns ErrRunnerStopped once the runner is stopped, or the context
// error if ctx is done before the event fits into the mailbox.
func (r *Runner[C, E]) Dispatch(ctx context.Context, event E) error {
	return r.submit(ctx, envelope[E]{event: event})
}

// Do enqueues an event and blocks until the machine has processed it,
// returning the machine's dispatch result (for example
// fsm.ErrMachineStopped once the machine has halted).
func (r *Runner[C, E]) Do(ctx context.Context, event E) error {
	result := make(chan error, 1)

	err := r.submit(ctx, envelope[E]{event: event, result: result})
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-result:
		return err
	}
}

// Stop closes the mailbox. Events already enqueued are still processed;
// afterwards the machine's exit runs and Wait unblocks. Safe to call
// multiple times.
func (r *Runner[C, E]) Stop() {
	if !r.dead.CompareAndSwap(false, true) {
		return
	}

	close(r.inbox)
}

// Wait blocks until the runner's goroutine has fully stopped.
func (r *Runner[C, E]) Wait() {
	r.wg.Wait()
}

// Alive returns true while the runner accepts events.
func (r *Runner[C, E]) Alive() bool {
	return !r.dead.Load()
}

// submit enqueues an envelope, guarding against the mailbox closing
// concurrently.
func (r *Runner[C, E]) submit(ctx context.Context, env envelope[E]) (err error) {
	if r.dead.Load() {
		return ErrRunnerStopped
	}

	// The mailbox can close between the liveness check and the send; the
	// resulting panic is translated instead of crashing the producer.
	defer func() {
		if recover() != nil {
			err = ErrRunnerStopped
		}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case r.inbox <- env:
		return nil
	}
}

// loop is the single consumer of the mailbox.
func (r *Runner[C, E]) loop(ctx context.Context) {
	defer r.wg.Done()
	defer aliveRunners.WithLabelValues(r.machineLabel()).Dec()

	for {
		select {
		case <-ctx.Done():
			r.Stop()

			// Reply to everything still queued, then shut the machine down.
			for env := range r.inbox {
				r.reply(env, ctx.Err())
			}

			r.finish(context.WithoutCancel(ctx))

			return
		case env, ok := <-r.inbox:
			if !ok {
				r.finish(ctx)

				return
			}

			r.reply(env, r.process(ctx, env.event))

			eventsProcessed.WithLabelValues(r.machineLabel()).Inc()

			// Once the machine halts itself, the runner follows. Already
			// queued events drain with ErrMachineStopped replies.
			if r.machine.Stopped() {
				r.Stop()
			}
		}
	}
}

// process dispatches one event with panic recovery, so a misbehaving state
// callback cannot take the runner goroutine down.
func (r *Runner[C, E]) process(ctx context.Context, event E) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			panicsRecovered.WithLabelValues(r.machineLabel()).Inc()

			slog.ErrorContext(ctx, "runner recovered from panic",
				"machine", r.machine.Name(),
				"event", event,
				"error", rec,
				"stack", string(debug.Stack()))

			err = fmt.Errorf("%w: %v", ErrCallbackPanic, rec)
		}
	}()

	return r.machine.Dispatch(ctx, event)
}

func (r *Runner[C, E]) reply(env envelope[E], err error) {
	if env.result == nil {
		return
	}

	env.result <- err

	close(env.result)
}

// finish runs the machine's explicit stop once the mailbox has drained.
func (r *Runner[C, E]) finish(ctx context.Context) {
	if !r.machine.Stopped() {
		r.machine.Stop(ctx)
	}
}

func (r *Runner[C, E]) machineLabel() string {
	if r.machine.Name() == "" {
		return "unknown"
	}

	return r.machine.Name()
}
