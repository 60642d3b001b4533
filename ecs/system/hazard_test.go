package system

import (
	"testing"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

func TestHazardContactRespawnsPlayer(t *testing.T) {
	w, player, phys := newPlayerWorld(t)
	sys := NewHazardSystem()

	spike := ecs.CreateEntity(w)
	_ = ecs.Add(w, spike, component.TransformComponent.Kind(), &component.Transform{X: 260, Y: 672})
	_ = ecs.Add(w, spike, component.HazardComponent.Kind(), &component.Hazard{Width: 64, Height: 16})

	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	pt.Y = 660 // feet in the spikes
	phys.velX[player] = 240

	sys.Update(w)
	if pt.X != 96 || pt.Y != 600 {
		t.Fatalf("player at (%v, %v), want spawn (96, 600)", pt.X, pt.Y)
	}
	if phys.velX[player] != 0 || phys.velY[player] != 0 {
		t.Fatalf("respawn kept velocity (%v, %v)", phys.velX[player], phys.velY[player])
	}
}

func TestHazardDeathReleasesGrabbedBlock(t *testing.T) {
	w, player, phys := newPlayerWorld(t)
	sys := NewHazardSystem()

	block := newElementEntity(w, "crate_a")
	_ = ecs.Add(w, block, component.TransformComponent.Kind(), &component.Transform{X: 300, Y: 656})
	_ = ecs.Add(w, block, component.PushBlockComponent.Kind(), &component.PushBlock{Size: 32})
	phys.grounded[block] = true
	if !GrabBlock(w, block, player) {
		t.Fatal("setup grab failed")
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.GrabbedBlock = component.Entity(block)

	spike := ecs.CreateEntity(w)
	_ = ecs.Add(w, spike, component.TransformComponent.Kind(), &component.Transform{X: 260, Y: 672})
	_ = ecs.Add(w, spike, component.HazardComponent.Kind(), &component.Hazard{Width: 64, Height: 16})
	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	pt.Y = 660

	sys.Update(w)
	b, _ := ecs.Get(w, block, component.PushBlockComponent.Kind())
	if b.Grabbed || p.GrabbedBlock != 0 {
		t.Fatal("death did not release the grabbed crate")
	}
}

func TestNoContactNoRespawn(t *testing.T) {
	w, player, _ := newPlayerWorld(t)
	sys := NewHazardSystem()

	spike := ecs.CreateEntity(w)
	_ = ecs.Add(w, spike, component.TransformComponent.Kind(), &component.Transform{X: 600, Y: 672})
	_ = ecs.Add(w, spike, component.HazardComponent.Kind(), &component.Hazard{Width: 64, Height: 16})

	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	before := *pt
	sys.Update(w)
	if *pt != before {
		t.Fatalf("player moved from %+v to %+v without contact", before, *pt)
	}
}

func TestEnemyPatrolsAndFlips(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewEnemySystem()

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 400, Y: 656})
	_ = ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{MinX: 352, MaxX: 560, Speed: 70})

	en, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
	t0, _ := ecs.Get(w, e, component.TransformComponent.Kind())

	sys.Update(w)
	if en.Dir != 1 || t0.X <= 400 {
		t.Fatalf("first tick: dir=%v x=%v", en.Dir, t0.X)
	}

	// walk to the far end and bounce back
	for i := 0; i < 300; i++ {
		sys.Update(w)
	}
	if en.Dir != -1 {
		t.Fatalf("dir=%v after reaching max, want -1", en.Dir)
	}
	if t0.X < 352 || t0.X > 560 {
		t.Fatalf("x=%v escaped patrol range", t0.X)
	}
}
