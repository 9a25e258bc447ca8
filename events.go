package gridtui

import "slices"

// EventType classifies events flowing through an EventQueue.
type EventType uint8

const (
	EventFocusIn EventType = iota
	EventFocusOut
	EventActivate
	EventDeactivate
	EventUpdate
	EventKey
	// EventAny matches every event type when subscribing.
	EventAny
)

var eventTypeNames = [...]string{
	EventFocusIn:    "focus-in",
	EventFocusOut:   "focus-out",
	EventActivate:   "activate",
	EventDeactivate: "deactivate",
	EventUpdate:     "update",
	EventKey:        "key",
	EventAny:        "any",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is a message delivered to subscribers. Target is the id of the
// component the event concerns, if any. Key is set for EventKey.
type Event struct {
	Type   EventType
	Target string
	Key    KeyEvent
}

type subscription struct {
	types []EventType
	fn    func(Event)
}

func (s subscription) matches(t EventType) bool {
	return slices.Contains(s.types, EventAny) || slices.Contains(s.types, t)
}

// EventQueue is a FIFO publish/subscribe queue. Events are buffered by
// Enqueue and delivered by Process on the caller's goroutine.
type EventQueue struct {
	subs    []subscription
	pending []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Subscribe registers fn for the given event types. Subscribing with no
// types is the same as subscribing to EventAny.
func (q *EventQueue) Subscribe(fn func(Event), types ...EventType) {
	if len(types) == 0 {
		types = []EventType{EventAny}
	}
	q.subs = append(q.subs, subscription{types: types, fn: fn})
}

// Enqueue appends e to the queue.
func (q *EventQueue) Enqueue(e Event) {
	q.pending = append(q.pending, e)
}

// Len returns the number of undelivered events.
func (q *EventQueue) Len() int { return len(q.pending) }

// Process delivers the events that are queued when it is called, in order.
// Events enqueued by handlers wait for the next call. It returns the number
// of events delivered.
func (q *EventQueue) Process() int {
	batch := q.pending
	q.pending = nil
	for _, e := range batch {
		for _, s := range q.subs {
			if s.matches(e.Type) {
				s.fn(e)
			}
		}
	}
	return len(batch)
}
