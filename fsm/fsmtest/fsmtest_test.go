package fsmtest_test

import (
	"testing"

	"github.com/amp-labs/fsmkit/fsm"
	"github.com/amp-labs/fsmkit/fsm/fsmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counters struct {
	ticks int
}

func TestRecorderTracksLifecycle(t *testing.T) {
	t.Parallel()

	log := &fsmtest.Log{}

	running := fsmtest.Wrap[counters, string]("running", log, nil)
	script := fsmtest.NewScripted[counters, string]("idle-script").
		EventReturns(fsm.ChangeTo[counters, string](running))
	idle := fsmtest.Wrap[counters, string]("idle", log, script)

	fc := &counters{}
	m := fsm.New[counters, string](idle, fc)

	require.NoError(t, m.Start(t.Context()))
	require.NoError(t, m.Dispatch(t.Context(), "go"))

	fsmtest.RequireSequence(t, log,
		"idle.enter",
		"idle.event(go)",
		"idle.exit",
		"running.enter",
	)
	fsmtest.RequireRunning(t, m)
}

func TestScriptedStopsMachine(t *testing.T) {
	t.Parallel()

	state := fsmtest.NewScripted[counters, string]("one-shot").
		EventReturns(
			fsm.Stay[counters, string](),
			fsm.Stop[counters, string](),
		)

	m := fsm.New[counters, string](state, &counters{})

	require.NoError(t, m.Start(t.Context()))
	require.NoError(t, m.Dispatch(t.Context(), "first"))
	fsmtest.RequireRunning(t, m)

	require.NoError(t, m.Dispatch(t.Context(), "second"))
	fsmtest.RequireStopped(t, m)
}

func TestScriptedExhaustedScriptStays(t *testing.T) {
	t.Parallel()

	state := fsmtest.NewScripted[counters, string]("empty")
	m := fsm.New[counters, string](state, &counters{})

	require.NoError(t, m.Start(t.Context()))
	require.NoError(t, m.Dispatch(t.Context(), "anything"))

	assert.False(t, m.Stopped())
	assert.Same(t, state, m.Current())
}

func TestLogReset(t *testing.T) {
	t.Parallel()

	log := &fsmtest.Log{}
	state := fsmtest.Wrap[counters, string]("lonely", log, nil)

	m := fsm.New[counters, string](state, &counters{})
	require.NoError(t, m.Start(t.Context()))

	require.NotEmpty(t, log.Calls())

	log.Reset()
	assert.Empty(t, log.Calls())
}
