package game

import "fmt"

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// EventKind identifies a session transition.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventFreeze
	EventClear
	EventGameOver
	EventPause
	EventResume
	EventRevealDone
)

// Event describes a transition. Piece is the shape name involved, Layers
// the number of layers removed by an EventClear.
type Event struct {
	Kind   EventKind
	Piece  string
	Layers int
}

func (e Event) String() string {
	switch e.Kind {
	case EventClear:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Layers)
	case EventSpawn, EventFreeze:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Piece)
	default:
		return e.Kind.String()
	}
}
