package ecs

// EventType names a per-frame world event.
type EventType string

const (
	// EventBoundaryClamped is pushed when Movement repositioned an entity
	// to keep it inside the level bounds.
	EventBoundaryClamped EventType = "boundary_clamped"
	// EventShotFired is pushed for every bullet an airplane spawns.
	EventShotFired EventType = "shot_fired"
	// EventDespawned is pushed when a system destroys an entity.
	EventDespawned EventType = "despawned"
)

// Event is a world event about one entity.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
