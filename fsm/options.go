package fsm

// Option configures a Machine at construction time.
type Option[C, E any] func(*Machine[C, E])

// WithName sets the machine name used in logs, metrics and spans.
// Unnamed machines are labeled "unknown".
func WithName[C, E any](name string) Option[C, E] {
	return func(m *Machine[C, E]) {
		m.name = name
	}
}

// WithLogger sets the logger invoked on lifecycle events. Without it the
// machine logs nothing.
func WithLogger[C, E any](logger Logger) Option[C, E] {
	return func(m *Machine[C, E]) {
		m.logger = logger
	}
}

// WithInterceptor sets a global event handler consulted before the active
// state on every Dispatch.
func WithInterceptor[C, E any](interceptor Interceptor[C, E]) Option[C, E] {
	return func(m *Machine[C, E]) {
		m.interceptor = interceptor
	}
}
