package heap

// Handle identifies a live allocation within a Space.
// Handle 0 is reserved and always invalid.
type Handle uint32

// EventType identifies a handle lifecycle transition.
type EventType uint8

const (
	EventCreated EventType = iota
	EventRetained
	EventReleased
	EventDropped
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventRetained:
		return "retained"
	case EventReleased:
		return "released"
	case EventDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Event describes a handle lifecycle transition.
type Event struct {
	TypeName string
	Refs     int64
	Handle   Handle
	Type     EventType
}

// Observer receives handle lifecycle events.
type Observer interface {
	OnHandleEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) OnHandleEvent(e Event) { f(e) }

// Dropper is optionally implemented by values that need cleanup when the
// last handle to them is released.
type Dropper interface {
	Drop()
}
