package casteljau

import "fmt"

// EventKind identifies the kind of a pointer event.
type EventKind uint8

const (
	ClickEvent EventKind = iota + 1
	DownEvent
	MoveEvent
	UpEvent
)

func (k EventKind) String() string {
	switch k {
	case ClickEvent:
		return "click"
	case DownEvent:
		return "down"
	case MoveEvent:
		return "move"
	case UpEvent:
		return "up"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a pointer event at a position in canvas-local coordinates.
type Event struct {
	Kind EventKind
	Pos  Point
}

func (ev Event) String() string {
	return fmt.Sprintf("%s %s", ev.Kind, ev.Pos)
}
