package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer creates a test tracer with an in-memory exporter.
func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
	)

	oldProvider := otel.GetTracerProvider()

	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		otel.SetTracerProvider(oldProvider)
	})

	return exporter
}

// Note: Cannot use t.Parallel() because setupTestTracer modifies the global
// OTEL tracer provider.
//
//nolint:paralleltest // Test modifies global OTEL tracer provider
func TestSpanCreation(t *testing.T) {
	exporter := setupTestTracer(t)

	running := &recState{name: "running"}
	idle := &recState{name: "idle"}
	idle.event = func(fc *testCtx, ev string) Directive[testCtx, string] {
		return idle.ChangeTo(running)
	}

	m := New(idle, &testCtx{}, WithName[testCtx, string]("traced"))

	require.NoError(t, m.Start(t.Context()))
	require.NoError(t, m.Dispatch(t.Context(), "start"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	names := []string{spans[0].Name, spans[1].Name}
	assert.Contains(t, names, "fsm.start")
	assert.Contains(t, names, "fsm.dispatch")

	for _, span := range spans {
		assert.Contains(t, span.Attributes, attribute.String("machine", "traced"))
		assert.Contains(t, span.Attributes, attribute.String("machine_id", m.ID()))
	}
}
