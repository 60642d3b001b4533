package system

import (
	"math"
	"testing"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

func newElevatorWorld(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	e := newElementEntity(w, "lift_a")
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 724, Y: 608})
	_ = ecs.Add(w, e, component.ElevatorComponent.Kind(), &component.Elevator{
		StartY:  608,
		EndY:    358,
		Speed:   100,
		PauseMs: 1000,
		State:   component.ElevatorAtStart,
	})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodyKinematic,
		Width:  96,
		Height: 16,
	})
	return w, e
}

func elevState(w *ecs.World, e ecs.Entity) component.ElevatorState {
	el, _ := ecs.Get(w, e, component.ElevatorComponent.Kind())
	return el.State
}

func elevY(w *ecs.World, e ecs.Entity) float64 {
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	return t.Y
}

func TestElevatorCycleTiming(t *testing.T) {
	w, e := newElevatorWorld(t)
	sys := NewElevatorSystem()
	element(w, e).Active = true

	tick := func() { sys.Update(w) }

	// 250 px at 100 px/s is 2500 ms: 150 ticks, motion starting on the
	// activation tick.
	n := ticksUntil(160, tick, func() bool { return elevState(w, e) == component.ElevatorPausedAtEnd })
	if n < 150 || n > 151 {
		t.Fatalf("reached end in %d ticks, want 150", n)
	}
	if elevY(w, e) != 358 {
		t.Fatalf("end stop y=%v, want 358", elevY(w, e))
	}

	// 1000 ms pause is 60 ticks; the 60th tick also starts the down leg
	n = ticksUntil(70, tick, func() bool { return elevState(w, e) == component.ElevatorMovingToStart })
	if n < 59 || n > 61 {
		t.Fatalf("paused for %d ticks, want 60", n)
	}

	n = ticksUntil(160, tick, func() bool { return elevState(w, e) == component.ElevatorPausedAtStart })
	if n == -1 {
		t.Fatal("never returned to the start stop")
	}
	if elevY(w, e) != 608 {
		t.Fatalf("start stop y=%v, want 608", elevY(w, e))
	}
}

func TestElevatorDeltaYSumsToLegDistance(t *testing.T) {
	w, e := newElevatorWorld(t)
	sys := NewElevatorSystem()
	el, _ := ecs.Get(w, e, component.ElevatorComponent.Kind())
	element(w, e).Active = true

	sum := 0.0
	for i := 0; i < 150; i++ {
		sys.Update(w)
		sum += el.DeltaY
	}
	if math.Abs(sum-(-250)) > 1e-9 {
		t.Fatalf("sum of DeltaY over the up leg = %v, want -250", sum)
	}
}

func TestElevatorUnpoweredReturnSkipsPause(t *testing.T) {
	w, e := newElevatorWorld(t)
	sys := NewElevatorSystem()
	element(w, e).Active = true

	for i := 0; i < 75; i++ {
		sys.Update(w)
	}
	if elevState(w, e) != component.ElevatorMovingToEnd {
		t.Fatalf("state = %v, want moving-to-end", elevState(w, e))
	}
	midY := elevY(w, e)

	element(w, e).Active = false
	sys.Update(w)
	if elevState(w, e) != component.ElevatorReturning {
		t.Fatalf("state = %v, want returning", elevState(w, e))
	}

	n := ticksUntil(200, func() { sys.Update(w) }, func() bool {
		return elevState(w, e) == component.ElevatorAtStart
	})
	if n == -1 {
		t.Fatal("never glided back to start")
	}
	if elevY(w, e) != 608 {
		t.Fatalf("returned y=%v, want 608", elevY(w, e))
	}
	// the return covers the distance already travelled, at cycle speed
	wantTicks := int(math.Ceil((608 - midY) / 100 * 60))
	if n < wantTicks-2 || n > wantTicks+2 {
		t.Fatalf("return took %d ticks, want about %d", n, wantTicks)
	}
}

func TestElevatorReactivationMidReturn(t *testing.T) {
	w, e := newElevatorWorld(t)
	sys := NewElevatorSystem()
	element(w, e).Active = true

	for i := 0; i < 75; i++ {
		sys.Update(w)
	}
	element(w, e).Active = false
	for i := 0; i < 20; i++ {
		sys.Update(w)
	}
	if elevState(w, e) != component.ElevatorReturning {
		t.Fatalf("state = %v, want returning", elevState(w, e))
	}

	element(w, e).Active = true
	sys.Update(w)
	if elevState(w, e) != component.ElevatorMovingToEnd {
		t.Fatalf("state = %v, want moving-to-end after re-power", elevState(w, e))
	}
}

func TestElevatorZeroLengthLegStaysPut(t *testing.T) {
	w := ecs.NewWorld()
	e := newElementEntity(w, "lift_flat")
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 400})
	_ = ecs.Add(w, e, component.ElevatorComponent.Kind(), &component.Elevator{
		StartY: 400,
		EndY:   400.5, // under the minimum leg distance
		Speed:  100,
		State:  component.ElevatorAtStart,
	})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Kind: component.BodyKinematic, Width: 96, Height: 16})

	sys := NewElevatorSystem()
	element(w, e).Active = true
	for i := 0; i < 30; i++ {
		sys.Update(w)
	}
	if elevState(w, e) != component.ElevatorAtStart {
		t.Fatalf("state = %v, want at-start (sub-pixel legs snap)", elevState(w, e))
	}
}

func TestElevatorCarriesRiders(t *testing.T) {
	w, e := newElevatorWorld(t)
	w.SetPhysics(newStubPhysics())
	sys := NewElevatorSystem()

	// rider standing on the platform top (y 608), feet at 608
	rider := ecs.CreateEntity(w)
	_ = ecs.Add(w, rider, component.TransformComponent.Kind(), &component.Transform{X: 740, Y: 560})
	_ = ecs.Add(w, rider, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Kind: component.BodyDynamic, Width: 24, Height: 48})

	// bystander on the ground elsewhere
	other := ecs.CreateEntity(w)
	_ = ecs.Add(w, other, component.TransformComponent.Kind(), &component.Transform{X: 100, Y: 560})
	_ = ecs.Add(w, other, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Kind: component.BodyDynamic, Width: 24, Height: 48})

	element(w, e).Active = true
	for i := 0; i < 150; i++ {
		sys.Update(w)
	}

	rt, _ := ecs.Get(w, rider, component.TransformComponent.Kind())
	if math.Abs(rt.Y-(358-48)) > 1e-9 {
		t.Fatalf("rider y=%v, want %v (carried the whole leg)", rt.Y, 358-48)
	}
	ot, _ := ecs.Get(w, other, component.TransformComponent.Kind())
	if ot.Y != 560 {
		t.Fatalf("bystander moved to y=%v", ot.Y)
	}
}
