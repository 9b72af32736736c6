package animations

import (
	"fmt"

	"github.com/automoto/quiverfall/config"
)

type modeKind uint8

const (
	continuous modeKind = iota
	oneShot
)

type endKind uint8

const (
	endReturn endKind = iota
	endDie
)

// OnEnd is what a one-shot does once its frame list wraps.
type OnEnd struct {
	kind  endKind
	state config.StateID
}

// ReturnTo resumes continuous playback of s when the one-shot ends.
func ReturnTo(s config.StateID) OnEnd {
	return OnEnd{kind: endReturn, state: s}
}

// Die signals that the owning entity finished dying.
func Die() OnEnd {
	return OnEnd{kind: endDie, state: config.StateNone}
}

func (e OnEnd) IsDie() bool {
	return e.kind == endDie
}

// State is the continuous state a ReturnTo end resumes. It is StateNone for Die.
func (e OnEnd) State() config.StateID {
	return e.state
}

func (e OnEnd) String() string {
	if e.kind == endDie {
		return "die"
	}
	return "return to " + e.state.String()
}

// StateMode is either a looping Continuous state or a OneShot that plays
// once and then runs its OnEnd. The zero value is Continuous(Idle).
type StateMode struct {
	kind          modeKind
	state         config.StateID
	interruptable bool
	onEnd         OnEnd
}

func Continuous(s config.StateID) StateMode {
	return StateMode{kind: continuous, state: s}
}

func OneShot(s config.StateID, interruptable bool, onEnd OnEnd) StateMode {
	return StateMode{kind: oneShot, state: s, interruptable: interruptable, onEnd: onEnd}
}

func (m StateMode) State() config.StateID {
	return m.state
}

func (m StateMode) IsOneShot() bool {
	return m.kind == oneShot
}

// Interruptable reports whether a one-shot may be replaced before it wraps.
// Continuous modes are always interruptable.
func (m StateMode) Interruptable() bool {
	return m.kind == continuous || m.interruptable
}

// OnEnd returns the end policy of a one-shot. ok is false for Continuous.
func (m StateMode) OnEnd() (OnEnd, bool) {
	if m.kind != oneShot {
		return OnEnd{}, false
	}
	return m.onEnd, true
}

func (m StateMode) CanBeReplaced() bool {
	return m.Interruptable()
}

// Replace returns next if the current mode permits replacement, otherwise
// the current mode unchanged and false.
func (m StateMode) Replace(next StateMode) (StateMode, bool) {
	if !m.CanBeReplaced() {
		return m, false
	}
	return next, true
}

// Complete handles a wrap of the frame list. Continuous modes keep looping,
// ReturnTo one-shots become Continuous, and Die one-shots stay as they are
// and report die.
func (m StateMode) Complete() (next StateMode, die bool) {
	switch m.kind {
	case oneShot:
		if m.onEnd.kind == endDie {
			return m, true
		}
		return Continuous(m.onEnd.state), false
	default:
		return m, false
	}
}

func (m StateMode) String() string {
	if m.kind == oneShot {
		return fmt.Sprintf("OneShot(%s, interruptable=%t, %s)", m.state, m.interruptable, m.onEnd)
	}
	return fmt.Sprintf("Continuous(%s)", m.state)
}
