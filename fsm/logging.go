package fsm

import (
	"context"
	"log/slog"
)

// Logger provides logging hooks for machine execution. The machine calls
// the hooks only when a logger has been set via WithLogger.
type Logger interface {
	StateEntered(ctx context.Context, machine, state string)
	StateExited(ctx context.Context, machine, state string)
	EventDispatched(ctx context.Context, machine, state string, event any, outcome string)
	TransitionExecuted(ctx context.Context, machine, from, to string)
	MachineStopped(ctx context.Context, machine, state string)
}

// SlogLogger implements Logger on top of log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger creates a SlogLogger backed by slog.Default().
func NewDefaultLogger() *SlogLogger {
	return NewSlogLogger(slog.Default())
}

// NewSlogLogger creates a SlogLogger backed by the given slog logger.
// A nil logger falls back to slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) StateEntered(ctx context.Context, machine, state string) {
	l.logger.InfoContext(ctx, "State entered",
		"machine", machine,
		"state", state,
	)
}

func (l *SlogLogger) StateExited(ctx context.Context, machine, state string) {
	l.logger.InfoContext(ctx, "State exited",
		"machine", machine,
		"state", state,
	)
}

func (l *SlogLogger) EventDispatched(ctx context.Context, machine, state string, event any, outcome string) {
	l.logger.DebugContext(ctx, "Event dispatched",
		"machine", machine,
		"state", state,
		"event", event,
		"outcome", outcome,
	)
}

func (l *SlogLogger) TransitionExecuted(ctx context.Context, machine, from, to string) {
	l.logger.InfoContext(ctx, "Transition executed",
		"machine", machine,
		"from", from,
		"to", to,
	)
}

func (l *SlogLogger) MachineStopped(ctx context.Context, machine, state string) {
	l.logger.InfoContext(ctx, "Machine stopped",
		"machine", machine,
		"state", state,
	)
}
