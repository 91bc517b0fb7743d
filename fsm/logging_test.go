package fsm

import (
	"context"
	"fmt"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures every hook invocation in order.
type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) StateEntered(ctx context.Context, machine, state string) {
	l.entries = append(l.entries, "entered:"+state)
}

func (l *recordingLogger) StateExited(ctx context.Context, machine, state string) {
	l.entries = append(l.entries, "exited:"+state)
}

func (l *recordingLogger) EventDispatched(ctx context.Context, machine, state string, event any, outcome string) {
	l.entries = append(l.entries, fmt.Sprintf("event:%s:%v:%s", state, event, outcome))
}

func (l *recordingLogger) TransitionExecuted(ctx context.Context, machine, from, to string) {
	l.entries = append(l.entries, "transition:"+from+"->"+to)
}

func (l *recordingLogger) MachineStopped(ctx context.Context, machine, state string) {
	l.entries = append(l.entries, "stopped:"+state)
}

func TestLoggerHookOrder(t *testing.T) {
	t.Parallel()

	done := &recState{name: "done"}
	done.enter = func(fc *testCtx) Directive[testCtx, string] {
		return done.Stop()
	}
	work := &recState{name: "work"}
	work.event = func(fc *testCtx, ev string) Directive[testCtx, string] {
		return work.ChangeTo(done)
	}

	log := &recordingLogger{}
	m := New(work, &testCtx{},
		WithName[testCtx, string]("logged"),
		WithLogger[testCtx, string](log))

	require.NoError(t, m.Start(t.Context()))
	require.NoError(t, m.Dispatch(t.Context(), "finish"))

	assert.Equal(t, []string{
		"entered:work",
		"event:work:finish:transition",
		"exited:work",
		"transition:work->done",
		"entered:done",
		"exited:done",
		"stopped:done",
	}, log.entries)
}

func TestLoggerSilentOnStoppedDispatch(t *testing.T) {
	t.Parallel()

	idle := &recState{name: "idle"}
	log := &recordingLogger{}
	m := New(idle, &testCtx{}, WithLogger[testCtx, string](log))

	require.NoError(t, m.Start(t.Context()))

	m.Stop(t.Context())

	before := len(log.entries)

	require.ErrorIs(t, m.Dispatch(t.Context(), "late"), ErrMachineStopped)
	assert.Len(t, log.entries, before)
}

func TestSlogLogger(t *testing.T) {
	t.Parallel()

	// Smoke test: the slog-backed logger must not panic on any hook and
	// routes output through the test logger.
	logger := NewSlogLogger(slogt.New(t))

	running := &recState{name: "running"}
	idle := &recState{name: "idle"}
	idle.event = func(fc *testCtx, ev string) Directive[testCtx, string] {
		return idle.ChangeTo(running)
	}

	m := New(idle, &testCtx{},
		WithName[testCtx, string]("slog-machine"),
		WithLogger[testCtx, string](logger))

	require.NoError(t, m.Start(t.Context()))
	require.NoError(t, m.Dispatch(t.Context(), "start"))

	m.Stop(t.Context())
	assert.True(t, m.Stopped())
}

func TestNewSlogLoggerNilFallback(t *testing.T) {
	t.Parallel()

	logger := NewSlogLogger(nil)
	require.NotNil(t, logger)
	assert.NotNil(t, logger.logger)
}
