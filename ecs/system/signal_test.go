package system

import (
	"testing"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

func TestSignalChainsResolveWithinOneTick(t *testing.T) {
	w := ecs.NewWorld()
	door := newElementEntity(w, "door_a")

	conn := NewConnectionSystem()
	conn.Connect("plate_a", "door_a")
	gens := NewGeneratorSystem()
	signals := NewSignalSystem(conn, gens)

	plate := newElementEntity(w, "plate_a")
	_ = ecs.Add(w, plate, component.TriggerComponent.Kind(), &component.Trigger{Type: component.TriggerPressurePlate})

	ActivateTrigger(w, plate)
	signals.Update(w)

	if !element(w, door).Active {
		t.Fatal("trigger signal did not reach the door this tick")
	}
	if w.Events().Len() != 0 {
		t.Fatal("events left queued after the drain")
	}
}

func TestZoneSignalReachesGoalSameTick(t *testing.T) {
	w := ecs.NewWorld()
	gens := NewGeneratorSystem()
	signals := NewSignalSystem(NewConnectionSystem(), gens)

	e := newElementEntity(w, "gen_goal")
	_ = ecs.Add(w, e, component.GeneratorComponent.Kind(), &component.Generator{Goal: true})

	// zone fires, generator activates, goal completes, all in one update
	w.Events().Push(ecs.Event{Type: ecs.SignalTriggerZoneActivated, ElementID: "zone_goal", TargetID: "gen_goal"})
	signals.Update(w)

	if !element(w, e).Active {
		t.Fatal("goal generator not activated")
	}
	if !signals.LevelComplete() {
		t.Fatal("level-complete not latched in the same tick")
	}

	signals.ResetLevelComplete()
	if signals.LevelComplete() {
		t.Fatal("latch survived reset")
	}
}

func TestObserversSeeEveryDrainedSignal(t *testing.T) {
	w := ecs.NewWorld()
	signals := NewSignalSystem(NewConnectionSystem(), NewGeneratorSystem())

	var seen []string
	signals.Observe(func(evt ecs.Event) { seen = append(seen, evt.Type) })

	w.Events().Push(ecs.Event{Type: ecs.SignalCordChanged, ElementID: "term_a"})
	w.Events().Push(ecs.Event{Type: ecs.SignalDoorClosingTick, ElementID: "door_a"})
	signals.Update(w)

	if len(seen) != 2 {
		t.Fatalf("observer saw %v, want both signals", seen)
	}
}

func TestTriggerDeactivationPropagates(t *testing.T) {
	w := ecs.NewWorld()
	door := newElementEntity(w, "door_a")
	element(w, door).Active = true

	conn := NewConnectionSystem()
	conn.Connect("plate_a", "door_a")
	signals := NewSignalSystem(conn, NewGeneratorSystem())

	w.Events().Push(ecs.Event{Type: ecs.SignalTriggerDeactivated, ElementID: "plate_a"})
	signals.Update(w)

	if element(w, door).Active {
		t.Fatal("door stayed powered after trigger deactivation")
	}
}
