package system

import (
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// PropSystem owns the door-vs-block spatial test. It must run after both
// the door's and the block's position updates for the tick so propping
// decisions use current-tick positions: a closing door whose bottom edge
// has reached a blocking crate freezes on the crate's top edge, and resumes
// the moment the crate leaves its path.
type PropSystem struct{}

func NewPropSystem() *PropSystem { return &PropSystem{} }

func (s *PropSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.DoorComponent.Kind(), component.TransformComponent.Kind(), func(doorE ecs.Entity, door *component.Door, dt *component.Transform) {
		switch door.State {
		case component.DoorClosing:
			if blockTop, ok := s.blockingTop(w, doorE, dt); ok {
				PropDoorAt(w, doorE, blockTop)
			}
		case component.DoorPropped:
			if _, ok := s.blockingTop(w, doorE, dt); !ok {
				ResumeDoorClosing(w, doorE)
			}
		}
	})
}

// blockingTop returns the top edge of a foreground block the door has
// closed down onto, if any.
func (s *PropSystem) blockingTop(w *ecs.World, doorE ecs.Entity, dt *component.Transform) (float64, bool) {
	body, ok := ecs.Get(w, doorE, component.PhysicsBodyComponent.Kind())
	if !ok || body == nil {
		return 0, false
	}
	doorBottom := dt.Y + body.Height

	found := false
	top := 0.0
	ecs.ForEach2(w, component.PushBlockComponent.Kind(), component.TransformComponent.Kind(), func(blockE ecs.Entity, block *component.PushBlock, bt *component.Transform) {
		if found || !block.InForeground {
			return
		}
		if !BlockUnderDoor(w, blockE, doorE) {
			return
		}
		if doorBottom >= bt.Y {
			found = true
			top = bt.Y
		}
	})
	return top, found
}
