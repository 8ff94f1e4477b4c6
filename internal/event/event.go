// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны

	prevented *bool
}

// PreventDefault marks the event so the host skips its default handling
// (for a touch move that means no page drag-scroll).
func (e Event) PreventDefault() {
	if e.prevented != nil {
		*e.prevented = true
	}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				// копия, чтобы не портить срез, по которому идёт Dispatch
				next := make([]Listener, 0, len(listeners)-1)
				next = append(next, listeners[:i]...)
				next = append(next, listeners[i+1:]...)
				if len(next) == 0 {
					delete(d.listeners, eventType)
				} else {
					d.listeners[eventType] = next
				}
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам. Returns true when a
// listener called PreventDefault.
func (d *Dispatcher) Dispatch(event Event) bool {
	prevented := false
	event.prevented = &prevented
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
	return prevented
}

// ListenerCount returns the number of active subscriptions across all types.
func (d *Dispatcher) ListenerCount() int {
	n := 0
	for _, listeners := range d.listeners {
		n += len(listeners)
	}
	return n
}
