package resource

const (
	CreatedEvent EventType = "created"

	// Window lifecycle events
	OpenedEvent  EventType = "opened"
	ClosedEvent  EventType = "closed"
	FocusedEvent EventType = "focused"
)

type (
	// EventType identifies the type of event
	EventType string

	// Event represents a change to an entity, e.g. a window being opened.
	Event[T any] struct {
		Type    EventType
		Payload T
	}
)

func NewEvent[T any](t EventType, payload T) Event[T] {
	return Event[T]{Type: t, Payload: payload}
}
