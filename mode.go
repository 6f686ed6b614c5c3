package casteljau

import "fmt"

// Mode is the pointer interaction mode of a [Controller].
type Mode uint8

const (
	// Idle is the default mode. Pressing the pointer on a control point and
	// moving it drags the point.
	Idle Mode = iota
	// Adding makes every click inside the input region append a control
	// point.
	Adding
	// Removing makes every click remove the first control point under the
	// pointer.
	Removing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Adding:
		return "adding"
	case Removing:
		return "removing"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Action is a user-triggered toggle, as offered by the editor's buttons.
type Action uint8

const (
	ToggleAdding Action = iota + 1
	ToggleRemoving
	ToggleCrossplot
	Reset
)

func (a Action) String() string {
	switch a {
	case ToggleAdding:
		return "toggle-adding"
	case ToggleRemoving:
		return "toggle-removing"
	case ToggleCrossplot:
		return "toggle-crossplot"
	case Reset:
		return "reset"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Next returns the mode that follows m after action. havePoints reports
// whether the model has any control points.
//
// Adding and Removing exclude each other: toggling one while the other is
// active leaves the other first. Removing can only be entered while there are
// points to remove, but can always be left. Reset leaves Removing and keeps
// any other mode. ToggleCrossplot doesn't affect the mode.
func (m Mode) Next(action Action, havePoints bool) Mode {
	switch action {
	case ToggleAdding:
		if m == Adding {
			return Idle
		}
		return Adding
	case ToggleRemoving:
		switch m {
		case Adding:
			m = Idle
		case Removing:
			return Idle
		}
		if !havePoints {
			return m
		}
		return Removing
	case Reset:
		if m == Removing {
			return Idle
		}
		return m
	default:
		return m
	}
}
