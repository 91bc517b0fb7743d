package fsm

// directiveKind enumerates the three possible outcomes of a callback.
type directiveKind int

const (
	kindStay directiveKind = iota
	kindChange
	kindStop
)

func (k directiveKind) String() string {
	switch k {
	case kindStay:
		return "stay"
	case kindChange:
		return "transition"
	case kindStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Directive is the sole vocabulary through which states communicate intent
// to the machine. Exactly one variant is produced per callback invocation:
// Stay, ChangeTo or Stop. The zero value is Stay.
type Directive[C, E any] struct {
	kind directiveKind
	next State[C, E]
}

// Stay keeps the current state active; no exit or entry occurs.
func Stay[C, E any]() Directive[C, E] {
	return Directive[C, E]{kind: kindStay}
}

// ChangeTo exits the current state and enters next, which becomes the
// active state. Changing to the state that is already active is a no-op.
func ChangeTo[C, E any](next State[C, E]) Directive[C, E] {
	return Directive[C, E]{kind: kindChange, next: next}
}

// Stop exits the current state and halts the machine; no further states
// are entered and subsequent dispatches report ErrMachineStopped.
func Stop[C, E any]() Directive[C, E] {
	return Directive[C, E]{kind: kindStop}
}

// IsStay reports whether the directive keeps the current state.
func (d Directive[C, E]) IsStay() bool {
	return d.kind == kindStay
}

// IsStop reports whether the directive halts the machine.
func (d Directive[C, E]) IsStop() bool {
	return d.kind == kindStop
}

// Next returns the target state of a ChangeTo directive, or nil.
func (d Directive[C, E]) Next() State[C, E] { //nolint:ireturn // Directive carries a state by capability
	return d.next
}

func (d Directive[C, E]) String() string {
	if d.kind == kindChange {
		return "transition(" + StateName(d.next) + ")"
	}

	return d.kind.String()
}
