package system

import (
	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// TriggerZoneSystem fires generator activations when the player enters a
// zone. Firing happens on the enter edge; a once-only zone permanently
// disables itself after the first fire, so later overlaps do nothing.
type TriggerZoneSystem struct{}

func NewTriggerZoneSystem() *TriggerZoneSystem { return &TriggerZoneSystem{} }

func (s *TriggerZoneSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	players := w.Query(component.PlayerComponent.Kind().ID(), component.TransformComponent.Kind().ID(), component.PhysicsBodyComponent.Kind().ID())
	if len(players) == 0 {
		return
	}
	playerE := players[0]
	pt, _ := ecs.Get(w, playerE, component.TransformComponent.Kind())
	pb, _ := ecs.Get(w, playerE, component.PhysicsBodyComponent.Kind())
	if pt == nil || pb == nil {
		return
	}

	ecs.ForEach3(w, component.TriggerZoneComponent.Kind(), component.ElementComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, zone *component.TriggerZone, el *component.Element, t *component.Transform) {
		rt, ok := ecs.Get(w, e, component.TriggerZoneRuntimeComponent.Kind())
		if !ok || rt == nil {
			rt = &component.TriggerZoneRuntime{}
			_ = ecs.Add(w, e, component.TriggerZoneRuntimeComponent.Kind(), rt)
		}

		inside := common.OverlapsRect(pt.X, pt.Y, pb.Width, pb.Height, t.X, t.Y, zone.Width, zone.Height)
		entered := inside && !rt.Inside
		rt.Inside = inside

		if !entered || !zone.Enabled {
			return
		}
		w.Events().Push(ecs.Event{
			Type:      ecs.SignalTriggerZoneActivated,
			ElementID: el.ID,
			TargetID:  zone.TargetGeneratorID,
		})
		if zone.OnceOnly {
			zone.Enabled = false
		}
	})
}
