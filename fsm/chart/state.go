package chart

import (
	"context"

	"github.com/amp-labs/fsmkit/fsm"
)

// Hook runs on state entry or exit and may mutate the shared context.
type Hook[C any] func(ctx context.Context, fc *C)

// tableState is a state driven entirely by its transition table: events are
// looked up by name, unmatched events resolve to Stay, and terminal states
// stop the machine from their own OnEnter.
type tableState[C any] struct {
	name     string
	terminal bool
	enter    Hook[C]
	exit     Hook[C]
	next     map[string]*tableState[C]
}

func (s *tableState[C]) Name() string {
	return s.name
}

func (s *tableState[C]) OnEnter(ctx context.Context, fc *C) fsm.Directive[C, string] {
	if s.enter != nil {
		s.enter(ctx, fc)
	}

	if s.terminal {
		return fsm.Stop[C, string]()
	}

	return fsm.Stay[C, string]()
}

func (s *tableState[C]) OnEvent(ctx context.Context, fc *C, event string) fsm.Directive[C, string] {
	if target, ok := s.next[event]; ok {
		return fsm.ChangeTo[C, string](target)
	}

	return fsm.Stay[C, string]()
}

func (s *tableState[C]) OnExit(ctx context.Context, fc *C) {
	if s.exit != nil {
		s.exit(ctx, fc)
	}
}
