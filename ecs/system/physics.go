package system

import (
	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// PhysicsSystem bridges transforms and the Chipmunk space. Kinematic
// movers were positioned by the puzzle systems earlier this tick; they are
// converted to step velocities so the space shoves dynamic bodies along.
// After the step, dynamic transforms are read back from their bodies.
type PhysicsSystem struct {
	world *ecs.PhysicsWorld
}

func NewPhysicsSystem(pw *ecs.PhysicsWorld) *PhysicsSystem {
	return &PhysicsSystem{world: pw}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || s.world == nil {
		return
	}
	dt := common.TickMs / 1000

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Kind == component.BodyKinematic {
			s.world.SyncKinematic(e, t.X, t.Y, dt)
		}
	})

	s.world.Step(dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		switch body.Kind {
		case component.BodyKinematic:
			s.world.SettleKinematic(e, t.X, t.Y)
		case component.BodyDynamic:
			if x, y, ok := s.world.Position(e); ok {
				t.X = x
				t.Y = y
			}
		}
	})
}
