package player

import "fmt"

// StateKind discriminates the lifecycle state of a session.
type StateKind int

const (
	StateIdle StateKind = iota
	StateReady
	StateError
)

func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "invalid"
	}
}

// State is the lifecycle state of the current session. Err is set only
// for StateError. Within one session the state moves monotonically from
// Idle to either Ready or Error; only a reload brings it back to Idle.
type State struct {
	Kind StateKind
	Err  error
}

func Idle() State { return State{Kind: StateIdle} }

func Ready() State { return State{Kind: StateReady} }

func Errored(err error) State { return State{Kind: StateError, Err: err} }

// Equal reports whether two states are indistinguishable to an observer.
// Errors compare by message, not identity.
func (s State) Equal(o State) bool {
	if s.Kind != o.Kind {
		return false
	}
	if s.Err == nil || o.Err == nil {
		return s.Err == o.Err
	}
	return s.Err.Error() == o.Err.Error()
}

func (s State) String() string {
	if s.Kind == StateError && s.Err != nil {
		return fmt.Sprintf("error: %v", s.Err)
	}
	return s.Kind.String()
}
