package fsm

import "context"

// Base is an embeddable default implementation of State. It ignores entry
// and every event (Stay) and does nothing on exit, so concrete states only
// override the callbacks they care about. It also provides directive
// helpers so state methods can write s.ChangeTo(next) instead of spelling
// out the package-level constructors with type parameters.
type Base[C, E any] struct{}

func (Base[C, E]) OnEnter(ctx context.Context, fc *C) Directive[C, E] {
	return Stay[C, E]()
}

func (Base[C, E]) OnEvent(ctx context.Context, fc *C, event E) Directive[C, E] {
	return Stay[C, E]()
}

func (Base[C, E]) OnExit(ctx context.Context, fc *C) {}

// Stay keeps the current state active.
func (Base[C, E]) Stay() Directive[C, E] {
	return Stay[C, E]()
}

// ChangeTo requests a transition to next.
func (Base[C, E]) ChangeTo(next State[C, E]) Directive[C, E] {
	return ChangeTo(next)
}

// Stop halts the machine.
func (Base[C, E]) Stop() Directive[C, E] {
	return Stop[C, E]()
}
