package system

import (
	"log"

	"github.com/milk9111/tethered/ecs"
)

// maxPropagationRounds bounds chained activation within one tick. A level
// would need a pathological trigger loop to hit it.
const maxPropagationRounds = 16

// SignalSystem drains the world event queue once per tick and routes each
// signal: trigger signals through the connection graph, zone signals to the
// generator system. Draining loops until no new signals appear, so a chain
// raised this tick lands this tick, before rendering. Observers (UI, audio,
// scripts) are fire-and-forget.
type SignalSystem struct {
	conn      *ConnectionSystem
	gens      *GeneratorSystem
	observers []func(ecs.Event)

	levelComplete bool
}

func NewSignalSystem(conn *ConnectionSystem, gens *GeneratorSystem) *SignalSystem {
	return &SignalSystem{conn: conn, gens: gens}
}

// Observe registers a fire-and-forget signal observer. Observers must not
// assume any ordering between each other.
func (s *SignalSystem) Observe(fn func(ecs.Event)) {
	if s == nil || fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}

// LevelComplete reports whether the goal generator activated. It latches
// until ResetLevelComplete.
func (s *SignalSystem) LevelComplete() bool {
	return s != nil && s.levelComplete
}

func (s *SignalSystem) ResetLevelComplete() {
	if s != nil {
		s.levelComplete = false
	}
}

func (s *SignalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for round := 0; round < maxPropagationRounds; round++ {
		events := w.Events().Drain()
		if len(events) == 0 {
			return
		}
		for _, evt := range events {
			s.route(w, evt)
			for _, fn := range s.observers {
				fn(evt)
			}
		}
	}
	log.Printf("signal: propagation still raising events after %d rounds, deferring to next tick", maxPropagationRounds)
}

func (s *SignalSystem) route(w *ecs.World, evt ecs.Event) {
	switch evt.Type {
	case ecs.SignalTriggerActivated:
		if s.conn != nil {
			s.conn.HandleActivated(w, evt.ElementID)
		}
	case ecs.SignalTriggerZoneActivated:
		if s.gens != nil {
			s.gens.ActivateGenerator(w, evt.TargetID)
		}
	case ecs.SignalTriggerDeactivated:
		if s.conn != nil {
			s.conn.HandleDeactivated(w, evt.ElementID)
		}
	case ecs.SignalLevelComplete:
		s.levelComplete = true
	}
}
