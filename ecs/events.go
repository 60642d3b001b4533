package ecs

// Signal names raised by the puzzle core. Any UI, audio, or script layer may
// observe them; the core never waits on a subscriber.
const (
	SignalTriggerActivated     = "trigger-activated"
	SignalTriggerDeactivated   = "trigger-deactivated"
	SignalTriggerZoneActivated = "trigger-zone-activated"
	SignalDoorClosingTick      = "door-closing-tick"
	SignalCordChanged          = "cord-changed"
	SignalGeneratorActivated   = "generator-activated"
	SignalGeneratorDeactivated = "generator-deactivated"
	SignalLevelComplete        = "level-complete"
)

// Event is a puzzle signal payload.
type Event struct {
	Type string
	// ElementID is the raising element (trigger, door, terminal, generator).
	ElementID string
	// TargetID carries a secondary ID where the signal names one: the
	// generator a trigger zone activates, or the element a cord change
	// touched.
	TargetID string
}

// EventQueue is a simple FIFO queue drained once per tick by the signal
// router.
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

// Drain returns all queued events and clears the queue.
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
