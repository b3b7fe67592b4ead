package encoding

import (
	"github.com/pkg/errors"
)

// ErrInvalidTransition is returned by Machine for transitions the
// sniff-and-restart protocol does not allow.
var ErrInvalidTransition = errors.New("invalid encoding state transition")

// State is the position of an input in the encoding detection protocol.
type State int

const (
	// Undetermined: nothing is known about the input yet.
	Undetermined State = iota
	// Sniffed: a byte order mark decided the encoding.
	Sniffed
	// Declared: the document declares its own encoding.
	Declared
	// Restarting: a declaration disagreed with the encoding used so far
	// and the input is being decoded again from the start.
	Restarting
	// Committed: the encoding is final.
	Committed
)

func (s State) String() string {
	switch s {
	case Undetermined:
		return "undetermined"
	case Sniffed:
		return "sniffed"
	case Declared:
		return "declared"
	case Restarting:
		return "restarting"
	case Committed:
		return "committed"
	}
	return "invalid"
}

var transitions = map[State][]State{
	Undetermined: {Sniffed, Declared, Committed},
	Sniffed:      {Committed},
	Declared:     {Restarting, Committed},
	Restarting:   {Committed},
}

// Machine enforces the detection protocol: a BOM commits, a declaration
// may cause at most one restart, and nothing moves after commit.
type Machine struct {
	state    State
	restarts int
}

func (m *Machine) State() State {
	return m.state
}

// Restarts returns how many times the input was restarted, 0 or 1.
func (m *Machine) Restarts() int {
	return m.restarts
}

// CanRestart reports whether a restart is still possible.
func (m *Machine) CanRestart() bool {
	return m.state == Declared && m.restarts == 0
}

// To moves the machine to next.
func (m *Machine) To(next State) error {
	for _, s := range transitions[m.state] {
		if s != next {
			continue
		}
		if next == Restarting {
			if m.restarts > 0 {
				break
			}
			m.restarts++
		}
		m.state = next
		return nil
	}
	return errors.Wrapf(ErrInvalidTransition, "%s -> %s", m.state, next)
}
