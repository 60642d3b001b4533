package system

import (
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// stubPhysics records every service call so system tests can assert on
// physics side effects without a real space.
type stubPhysics struct {
	grounded  map[ecs.Entity]bool
	velX      map[ecs.Entity]float64
	velY      map[ecs.Entity]float64
	side      map[ecs.Entity]bool
	footprint map[ecs.Entity]bool

	footprintCalls int
	sideCalls      int
}

func newStubPhysics() *stubPhysics {
	return &stubPhysics{
		grounded:  make(map[ecs.Entity]bool),
		velX:      make(map[ecs.Entity]float64),
		velY:      make(map[ecs.Entity]float64),
		side:      make(map[ecs.Entity]bool),
		footprint: make(map[ecs.Entity]bool),
	}
}

func (s *stubPhysics) RestingOnGround(e ecs.Entity) bool { return s.grounded[e] }

func (s *stubPhysics) ShiftPosition(e ecs.Entity, dx, dy float64) {}

func (s *stubPhysics) SetPosition(e ecs.Entity, x, y float64) {}

func (s *stubPhysics) SetVelocityX(e ecs.Entity, vx float64) { s.velX[e] = vx }

func (s *stubPhysics) SetVelocityY(e ecs.Entity, vy float64) { s.velY[e] = vy }

func (s *stubPhysics) SetSideCollision(e ecs.Entity, solid bool) {
	s.side[e] = solid
	s.sideCalls++
}

func (s *stubPhysics) SetFootprintEnabled(e ecs.Entity, enabled bool) {
	s.footprint[e] = enabled
	s.footprintCalls++
}

func newElementEntity(w *ecs.World, id string) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ElementComponent.Kind(), &component.Element{ID: id})
	if id != "" {
		w.Registry().Register(id, e)
	}
	return e
}

func element(w *ecs.World, e ecs.Entity) *component.Element {
	el, _ := ecs.Get(w, e, component.ElementComponent.Kind())
	return el
}

// ticksUntil runs fn up to max times, returning how many updates ran before
// cond first held. Returns -1 when cond never held.
func ticksUntil(max int, fn func(), cond func() bool) int {
	for i := 1; i <= max; i++ {
		fn()
		if cond() {
			return i
		}
	}
	return -1
}
