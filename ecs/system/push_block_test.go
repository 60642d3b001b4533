package system

import (
	"testing"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

func newBlockWorld(t *testing.T) (*ecs.World, ecs.Entity, ecs.Entity, *stubPhysics) {
	t.Helper()
	w := ecs.NewWorld()
	phys := newStubPhysics()
	w.SetPhysics(phys)

	block := newElementEntity(w, "crate_a")
	_ = ecs.Add(w, block, component.TransformComponent.Kind(), &component.Transform{X: 300, Y: 656})
	_ = ecs.Add(w, block, component.PushBlockComponent.Kind(), &component.PushBlock{Size: 32})
	_ = ecs.Add(w, block, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Kind: component.BodyDynamic, Width: 32, Height: 32, TopOnly: true})

	player := ecs.CreateEntity(w)
	_ = ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 268, Y: 640})
	_ = ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Kind: component.BodyDynamic, Width: 24, Height: 48})

	phys.grounded[block] = true
	phys.grounded[player] = true
	return w, block, player, phys
}

func TestGrabPromotesBlockToForegroundForever(t *testing.T) {
	w, block, player, phys := newBlockWorld(t)

	if !GrabBlock(w, block, player) {
		t.Fatal("grab failed in range")
	}
	b, _ := ecs.Get(w, block, component.PushBlockComponent.Kind())
	if !b.InForeground || !b.Grabbed {
		t.Fatalf("after grab: foreground=%v grabbed=%v", b.InForeground, b.Grabbed)
	}
	if !phys.side[block] {
		t.Fatal("side collision not enabled on first grab")
	}

	ReleaseBlock(w, block)
	if b.Grabbed {
		t.Fatal("block still grabbed after release")
	}
	if !b.InForeground {
		t.Fatal("foreground promotion reverted on release")
	}
	if phys.velX[block] != 0 {
		t.Fatalf("release left horizontal velocity %v", phys.velX[block])
	}

	// a second grab doesn't re-toggle physics
	calls := phys.sideCalls
	if !GrabBlock(w, block, player) {
		t.Fatal("second grab failed")
	}
	if phys.sideCalls != calls {
		t.Fatal("side collision toggled again on regrab")
	}
}

func TestBlockFollowsGrabberHorizontally(t *testing.T) {
	w, block, player, _ := newBlockWorld(t)
	sys := NewPushBlockSystem()

	if !GrabBlock(w, block, player) {
		t.Fatal("grab failed")
	}
	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	bt, _ := ecs.Get(w, block, component.TransformComponent.Kind())
	offset := bt.X - pt.X

	pt.X += 40
	sys.Update(w)
	if got := bt.X - pt.X; got != offset {
		t.Fatalf("offset drifted to %v, want %v", got, offset)
	}

	pt.X -= 100
	sys.Update(w)
	if got := bt.X - pt.X; got != offset {
		t.Fatalf("offset drifted to %v after pull, want %v", got, offset)
	}
}

func TestBlockAutoReleasesWhenAirborne(t *testing.T) {
	w, block, player, phys := newBlockWorld(t)
	sys := NewPushBlockSystem()

	if !GrabBlock(w, block, player) {
		t.Fatal("grab failed")
	}
	phys.grounded[block] = false
	sys.Update(w)

	b, _ := ecs.Get(w, block, component.PushBlockComponent.Kind())
	if b.Grabbed {
		t.Fatal("airborne block still grabbed")
	}
}

func TestBlockInRangeRejectsTopGrabs(t *testing.T) {
	w, block, player, _ := newBlockWorld(t)

	if !BlockInRange(w, block, player) {
		t.Fatal("side grab should be in range")
	}

	// stand the grabber on top of the block
	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	pt.X = 304
	pt.Y = 656 - 48
	if BlockInRange(w, block, player) {
		t.Fatal("grab from on top should be out of range")
	}

	// too far away horizontally
	pt.X = 200
	pt.Y = 640
	if BlockInRange(w, block, player) {
		t.Fatal("grab from 100+ px away should be out of range")
	}
}

func TestBlockUnderDoor(t *testing.T) {
	w, block, _, _ := newBlockWorld(t)

	door := newElementEntity(w, "door_x")
	_ = ecs.Add(w, door, component.TransformComponent.Kind(), &component.Transform{X: 300, Y: 486})
	_ = ecs.Add(w, door, component.DoorComponent.Kind(), &component.Door{ClosedY: 486, OpenY: 358, SlideSpeed: 120})
	_ = ecs.Add(w, door, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Kind: component.BodyKinematic, Width: 32, Height: 128})

	// crate at y 656: below the door's closed bottom edge (614)
	if BlockUnderDoor(w, block, door) {
		t.Fatal("crate below the closed span should not block")
	}

	bt, _ := ecs.Get(w, block, component.TransformComponent.Kind())
	bt.Y = 582
	if !BlockUnderDoor(w, block, door) {
		t.Fatal("crate inside the closing path should block")
	}

	bt.X = 400
	if BlockUnderDoor(w, block, door) {
		t.Fatal("crate beside the door should not block")
	}
}
