// internal/event/event.go
package event

// EventType - тип события
type EventType string

const (
	// UnitStepped fires for every hex a unit enters during a move.
	UnitStepped EventType = "unit_stepped"
	// UnitMoved fires once a move has finished.
	UnitMoved EventType = "unit_moved"
	RoadBuilt EventType = "road_built"
	TurnReset EventType = "turn_reset"
)

// Event - структура события
type Event struct {
	Type EventType
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       int
	listener Listener
}

// Dispatcher - диспетчер событий. Delivery is synchronous, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe registers listener for eventType and returns a function that removes it.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() {
		subs := d.listeners[eventType]
		for i, s := range subs {
			if s.id == id {
				d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch sends event to its subscribers. A nil Dispatcher drops events.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}
