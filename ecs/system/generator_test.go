package system

import (
	"testing"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

func addGenerator(w *ecs.World, id string, gen component.Generator) ecs.Entity {
	e := newElementEntity(w, id)
	_ = ecs.Add(w, e, component.GeneratorComponent.Kind(), &gen)
	return e
}

func TestGeneratorCascadeActivatesLinks(t *testing.T) {
	w := ecs.NewWorld()
	gens := NewGeneratorSystem()

	door := newElementEntity(w, "door_a")
	lift := newElementEntity(w, "lift_a")
	addGenerator(w, "gen_a", component.Generator{
		LinkIDs:         []string{"door_a", "missing"},
		AutoActivateIDs: []string{"lift_a"},
	})

	gens.ActivateGenerator(w, "gen_a")
	if !element(w, door).Active {
		t.Fatal("one-shot link not activated")
	}
	if !element(w, lift).Active {
		t.Fatal("auto-activate link not activated")
	}
	if !element(w, lift).PermanentlyPowered() {
		t.Fatal("auto-activate link missing permanent power")
	}

	// repeated activation is a no-op
	w.Events().Drain()
	gens.ActivateGenerator(w, "gen_a")
	if w.Events().Len() != 0 {
		t.Fatal("reactivating an active generator emitted signals")
	}
}

func TestPermanentPowerResistsDeactivation(t *testing.T) {
	w := ecs.NewWorld()
	gens := NewGeneratorSystem()

	lift := newElementEntity(w, "lift_a")
	addGenerator(w, "gen_a", component.Generator{AutoActivateIDs: []string{"lift_a"}})
	gens.ActivateGenerator(w, "gen_a")

	// an unrelated deactivation (cord unplug, plate release) bounces off
	if Deactivate(w, lift) {
		t.Fatal("permanently powered element deactivated")
	}
	if !element(w, lift).Active {
		t.Fatal("element lost power despite the permanent grant")
	}

	// only revoking the source drops it
	gens.DeactivateGenerator(w, "gen_a")
	if element(w, lift).Active {
		t.Fatal("element still active after its only source shut down")
	}
}

func TestPermanentPowerIsPerSource(t *testing.T) {
	w := ecs.NewWorld()
	gens := NewGeneratorSystem()

	lift := newElementEntity(w, "lift_a")
	addGenerator(w, "gen_a", component.Generator{AutoActivateIDs: []string{"lift_a"}})
	addGenerator(w, "gen_b", component.Generator{AutoActivateIDs: []string{"lift_a"}})

	gens.ActivateGenerator(w, "gen_a")
	gens.ActivateGenerator(w, "gen_b")

	gens.DeactivateGenerator(w, "gen_a")
	if !element(w, lift).Active {
		t.Fatal("element lost power while a second generator still holds it")
	}

	gens.DeactivateGenerator(w, "gen_b")
	if element(w, lift).Active {
		t.Fatal("element survived both sources shutting down")
	}
}

func TestGoalGeneratorRaisesLevelComplete(t *testing.T) {
	w := ecs.NewWorld()
	gens := NewGeneratorSystem()
	addGenerator(w, "gen_goal", component.Generator{Goal: true})

	gens.ActivateGenerator(w, "gen_goal")
	events := w.Events().Drain()
	if signalCount(events, ecs.SignalLevelComplete) != 1 {
		t.Fatalf("no level-complete signal in %v", events)
	}
	if signalCount(events, ecs.SignalGeneratorActivated) != 1 {
		t.Fatalf("no generator-activated signal in %v", events)
	}
}

func TestGeneratorStatus(t *testing.T) {
	w := ecs.NewWorld()
	gens := NewGeneratorSystem()
	addGenerator(w, "gen_a", component.Generator{
		Primary:         true,
		LinkIDs:         []string{"door_a"},
		AutoActivateIDs: []string{"lift_a"},
	})

	st, ok := gens.Status(w, "gen_a")
	if !ok {
		t.Fatal("status lookup failed")
	}
	if st.Active || !st.Primary || st.Goal {
		t.Fatalf("status = %+v", st)
	}
	if len(st.Linked) != 2 {
		t.Fatalf("linked = %v, want both link lists", st.Linked)
	}

	if _, ok := gens.Status(w, "ghost"); ok {
		t.Fatal("status for unknown generator should fail")
	}
}

func TestUnknownGeneratorActivationIsANoOp(t *testing.T) {
	w := ecs.NewWorld()
	gens := NewGeneratorSystem()
	gens.ActivateGenerator(w, "ghost")
	gens.DeactivateGenerator(w, "ghost")
	if w.Events().Len() != 0 {
		t.Fatal("unknown generator emitted signals")
	}
}
