package ecs

// EventType names a gameplay event raised by a system for whoever drives the
// world (usually the session).
type EventType string

const (
	EventLevelUp      EventType = "level_up"
	EventPlayerDied   EventType = "player_died"
	EventEnemyKilled  EventType = "enemy_killed"
	EventDamageDealt  EventType = "damage_dealt"
	EventOrbCollected EventType = "orb_collected"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Amount float64
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

// Len reports queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear drops everything without returning it.
func (q *EventQueue) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
