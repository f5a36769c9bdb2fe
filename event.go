package sandbox

import "time"

// EventType identifies a kind of motion event.
type EventType uint8

const (
	EventAdvance EventType = iota // an accepted tick moved X
	EventWrap                     // the accepted tick wrapped X before stepping
	EventTurn                     // the travel direction changed
	EventQuit                     // the user asked to quit
)

func (t EventType) String() string {
	switch t {
	case EventAdvance:
		return "advance"
	case EventWrap:
		return "wrap"
	case EventTurn:
		return "turn"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

// Event carries a snapshot of the motion state when something happened.
type Event struct {
	Type EventType
	X    float64
	Step float64
	At   time.Time
}

// EventSink is the interface for optional event consumers such as an ECS
// world. When set on an App, motion events are forwarded to it.
type EventSink interface {
	EmitEvent(event Event)
}

// EventFlusher is implemented by sinks that buffer events. The App calls
// FlushEvents at the end of every OnTick.
type EventFlusher interface {
	FlushEvents()
}

// Cue plays short feedback sounds. Implementations must not block the loop.
type Cue interface {
	PlayWrap()
	PlayTurn()
}
