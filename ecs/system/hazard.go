package system

import (
	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// HazardSystem respawns the player at the level spawn on contact with any
// hazard (spikes, enemies). Puzzle state is untouched; the worst failure in
// this game is being sent back, never a broken level.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(playerE ecs.Entity, player *component.Player, pt *component.Transform, pb *component.PhysicsBody) {
		hit := false
		ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, hz *component.Hazard, ht *component.Transform) {
			if hit {
				return
			}
			if common.OverlapsRect(pt.X, pt.Y, pb.Width, pb.Height, ht.X, ht.Y, hz.Width, hz.Height) {
				hit = true
			}
		})
		if !hit {
			return
		}

		pt.X = player.SpawnX
		pt.Y = player.SpawnY
		if p := w.Physics(); p != nil {
			p.SetPosition(playerE, player.SpawnX, player.SpawnY)
			p.SetVelocityX(playerE, 0)
			p.SetVelocityY(playerE, 0)
		}
		if grabbed := ecs.Entity(player.GrabbedBlock); grabbed.Valid() {
			ReleaseBlock(w, grabbed)
			player.GrabbedBlock = 0
		}
	})
}
