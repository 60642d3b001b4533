package system

import (
	"math"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// PlayerControllerSystem turns movement intents into body velocities and
// handles grab/release intents. Grabbing requires the side-range check; a
// failed check is not an error, the grab just doesn't happen.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem { return &PlayerControllerSystem{} }

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, player *component.Player, in *component.Input) {
		p := w.Physics()
		if p != nil {
			p.SetVelocityX(e, in.MoveX*player.MoveSpeed)
			if in.Jump && p.RestingOnGround(e) {
				p.SetVelocityY(e, -player.JumpSpeed)
			}
		}

		if !in.Grab {
			return
		}
		if grabbed := ecs.Entity(player.GrabbedBlock); grabbed.Valid() {
			ReleaseBlock(w, grabbed)
			player.GrabbedBlock = 0
			return
		}
		if blockE, ok := s.nearestGrabbable(w, e); ok {
			if GrabBlock(w, blockE, e) {
				player.GrabbedBlock = component.Entity(blockE)
			}
		}
	})

	// Drop the back-reference when a grabbed block auto-released itself.
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		grabbed := ecs.Entity(player.GrabbedBlock)
		if !grabbed.Valid() {
			return
		}
		block, ok := ecs.Get(w, grabbed, component.PushBlockComponent.Kind())
		if !ok || !block.Grabbed {
			player.GrabbedBlock = 0
		}
	})
}

func (s *PlayerControllerSystem) nearestGrabbable(w *ecs.World, playerE ecs.Entity) (ecs.Entity, bool) {
	pt, ok := ecs.Get(w, playerE, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}

	best := ecs.Entity(0)
	bestDist := math.Inf(1)
	ecs.ForEach2(w, component.PushBlockComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, block *component.PushBlock, t *component.Transform) {
		if block.Grabbed || !BlockInRange(w, e, playerE) {
			return
		}
		d := math.Hypot(t.X-pt.X, t.Y-pt.Y)
		if d < bestDist {
			best = e
			bestDist = d
		}
	})
	return best, best.Valid()
}
