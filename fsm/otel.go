package fsm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "fsmkit"

// startStartSpan creates the span for Machine.Start.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startStartSpan(ctx context.Context, machine, machineID, state string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "fsm.start")
	addMachineAttributes(span, machine, machineID)
	span.SetAttributes(attribute.String("initial_state", state))

	return ctx, span
}

// startDispatchSpan creates the span for Machine.Dispatch.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startDispatchSpan(ctx context.Context, machine, machineID, state string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "fsm.dispatch")
	addMachineAttributes(span, machine, machineID)
	span.SetAttributes(attribute.String("state", state))

	return ctx, span
}

// addMachineAttributes adds machine identity to a span.
func addMachineAttributes(span trace.Span, machine, machineID string) {
	span.SetAttributes(
		attribute.String("machine", machine),
		attribute.String("machine_id", machineID),
	)
}
