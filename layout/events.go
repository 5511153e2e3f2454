package layout

// EventType identifies a kind of layout event.
type EventType uint8

const (
	EventUnresolvedSource EventType = iota // a rule was skipped because its source did not resolve
	EventDetachedTarget                    // evaluation ran for a target outside the scene graph
)

func (t EventType) String() string {
	switch t {
	case EventUnresolvedSource:
		return "unresolved-source"
	case EventDetachedTarget:
		return "detached-target"
	}
	return "unknown"
}

// Event describes a recovered layout failure. Nothing in the engine treats
// these as errors; they are reported for diagnostics only.
type Event struct {
	Type     EventType
	NodeID   uint32
	NodeName string
	// Kind and Source are set for EventUnresolvedSource.
	Kind   Kind
	Source string
}

// EventSink receives layout events.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) {
	f(event)
}
