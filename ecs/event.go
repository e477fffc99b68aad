package ecs

// EventType names a kind of event; handlers subscribe by type.
type EventType string

// Event is anything published through the EventManager.
type Event interface {
	Type() EventType
}

type EventHandler func(Event)

type subscription struct {
	id      int
	handler EventHandler
}

// EventManager delivers events synchronously, in subscription order.
// Handlers may subscribe or unsubscribe while an event is being delivered;
// the change takes effect from the next Emit.
type EventManager struct {
	nextID int
	subs   map[EventType][]subscription
}

func NewEventManager() *EventManager {
	return &EventManager{subs: make(map[EventType][]subscription)}
}

// Subscribe registers handler for eventType and returns a func that removes
// it again. Calling the returned func more than once is a no-op.
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) (unsubscribe func()) {
	em.nextID++
	id := em.nextID
	em.subs[eventType] = append(em.subs[eventType], subscription{id: id, handler: handler})
	return func() { em.remove(eventType, id) }
}

func (em *EventManager) remove(eventType EventType, id int) {
	subs := em.subs[eventType]
	for i, s := range subs {
		if s.id == id {
			// copy so a delivery loop holding the old slice is unaffected
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			em.subs[eventType] = append(next, subs[i+1:]...)
			return
		}
	}
}

// Clear drops every handler registered for eventType.
func (em *EventManager) Clear(eventType EventType) {
	delete(em.subs, eventType)
}

// Emit delivers event to the handlers subscribed at the time of the call.
func (em *EventManager) Emit(event Event) {
	for _, s := range em.subs[event.Type()] {
		s.handler(event)
	}
}
