package chart

import (
	"fmt"

	"github.com/amp-labs/fsmkit/fsm"
)

// Builder provides a fluent API for constructing machines from a
// definition, with optional enter/exit hooks per state.
type Builder[C any] struct {
	config *Config
	enter  map[string]Hook[C]
	exit   map[string]Hook[C]
}

// NewBuilder creates a builder for an empty definition with the given name.
func NewBuilder[C any](name string) *Builder[C] {
	return NewBuilderFromConfig[C](&Config{Name: name})
}

// NewBuilderFromConfig creates a builder seeded from an existing definition
// (for example one loaded from YAML), so hooks can be attached before Build.
func NewBuilderFromConfig[C any](config *Config) *Builder[C] {
	return &Builder[C]{
		config: config,
		enter:  make(map[string]Hook[C]),
		exit:   make(map[string]Hook[C]),
	}
}

// Initial sets the initial state.
func (b *Builder[C]) Initial(state string) *Builder[C] {
	b.config.Initial = state

	return b
}

// State declares a state.
func (b *Builder[C]) State(name string) *Builder[C] {
	b.config.States = append(b.config.States, StateConfig{Name: name})

	return b
}

// Final declares a terminal state: entering it stops the machine.
func (b *Builder[C]) Final(name string) *Builder[C] {
	b.config.States = append(b.config.States, StateConfig{Name: name, Terminal: true})

	return b
}

// Transition declares that event on moves the machine from one state to
// another.
func (b *Builder[C]) Transition(from, on, to string) *Builder[C] {
	b.config.Transitions = append(b.config.Transitions, TransitionConfig{
		From: from,
		To:   to,
		On:   on,
	})

	return b
}

// OnEnter attaches a hook that runs when the named state is entered.
func (b *Builder[C]) OnEnter(state string, hook Hook[C]) *Builder[C] {
	b.enter[state] = hook

	return b
}

// OnExit attaches a hook that runs when the named state is exited.
func (b *Builder[C]) OnExit(state string, hook Hook[C]) *Builder[C] {
	b.exit[state] = hook

	return b
}

// Config returns the definition assembled so far.
func (b *Builder[C]) Config() *Config {
	return b.config
}

// Build validates the definition and constructs a machine over the given
// shared context. The machine is named after the definition unless the
// options override it; it still needs Start before events can be dispatched.
func (b *Builder[C]) Build(fc *C, opts ...fsm.Option[C, string]) (*fsm.Machine[C, string], error) {
	err := b.config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	states := make(map[string]*tableState[C], len(b.config.States))

	for _, stateConfig := range b.config.States {
		states[stateConfig.Name] = &tableState[C]{
			name:     stateConfig.Name,
			terminal: stateConfig.Terminal,
			enter:    b.enter[stateConfig.Name],
			exit:     b.exit[stateConfig.Name],
			next:     make(map[string]*tableState[C]),
		}
	}

	for hookState := range b.enter {
		if _, ok := states[hookState]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrHookStateNotFound, hookState)
		}
	}

	for hookState := range b.exit {
		if _, ok := states[hookState]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrHookStateNotFound, hookState)
		}
	}

	for _, transition := range b.config.Transitions {
		states[transition.From].next[transition.On] = states[transition.To]
	}

	machineOpts := append(
		[]fsm.Option[C, string]{fsm.WithName[C, string](b.config.Name)},
		opts...,
	)

	return fsm.New[C, string](states[b.config.Initial], fc, machineOpts...), nil
}
