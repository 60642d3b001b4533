package system

import (
	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// DoorSystem advances slide door motion. Activation always wins: powering a
// door mid-close (or while propped) cancels the close and opens from the
// current interpolated position. Propping is driven externally by the prop
// system, which owns the block-vs-door spatial test; the door itself stays
// block-agnostic.
type DoorSystem struct{}

func NewDoorSystem() *DoorSystem { return &DoorSystem{} }

func (s *DoorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.DoorComponent.Kind(), component.ElementComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, door *component.Door, el *component.Element, t *component.Transform) {
		switch door.State {
		case component.DoorClosed:
			if el.Active {
				startDoorMotion(door, t.Y, door.OpenY, component.DoorOpening)
			}
		case component.DoorOpen:
			if !el.Active {
				startDoorMotion(door, t.Y, door.ClosedY, component.DoorClosing)
			}
		case component.DoorOpening:
			if !el.Active {
				startDoorMotion(door, t.Y, door.ClosedY, component.DoorClosing)
				break
			}
			y, done := door.Motion.Step(common.TickMs)
			t.Y = y
			if done {
				door.State = component.DoorOpen
			}
		case component.DoorClosing:
			if el.Active {
				startDoorMotion(door, t.Y, door.OpenY, component.DoorOpening)
				break
			}
			y, done := door.Motion.Step(common.TickMs)
			t.Y = y
			w.Events().Push(ecs.Event{Type: ecs.SignalDoorClosingTick, ElementID: el.ID})
			if done {
				door.State = component.DoorClosed
			}
		case component.DoorPropped:
			if el.Active {
				door.Propped = false
				startDoorMotion(door, t.Y, door.OpenY, component.DoorOpening)
			}
		}
	})
}

func startDoorMotion(door *component.Door, from, to float64, state component.DoorState) {
	door.Propped = false
	door.Motion.Start(from, to, door.SlideSpeed)
	door.State = state
}

// PropDoorAt freezes a closing door with its bottom edge resting on y. Only
// valid while the door is closing; any other state is a silent no-op.
func PropDoorAt(w *ecs.World, e ecs.Entity, y float64) {
	door, okD := ecs.Get(w, e, component.DoorComponent.Kind())
	t, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	body, okB := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !okD || !okT || door.State != component.DoorClosing {
		return
	}
	if okB && body != nil {
		t.Y = y - body.Height
	}
	door.Motion.Cancel()
	door.Propped = true
	door.State = component.DoorPropped
}

// ResumeDoorClosing restarts the close motion of a propped door. Only valid
// from the propped state.
func ResumeDoorClosing(w *ecs.World, e ecs.Entity) {
	door, okD := ecs.Get(w, e, component.DoorComponent.Kind())
	t, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	if !okD || !okT || door.State != component.DoorPropped {
		return
	}
	door.Propped = false
	startDoorMotion(door, t.Y, door.ClosedY, component.DoorClosing)
}
