package system

import (
	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// riderTolerance is how close a body's bottom edge must sit to the
// elevator's top surface to count as resting on it.
const riderTolerance = 3.0

// minLeg is the distance below which a leg is treated as already arrived.
// Reversing exactly at a stop must not spawn a zero-duration tween.
const minLeg = 1.0

// ElevatorSystem advances elevator cycles and carries riders. DeltaY is
// applied to every body resting on the platform before that body's own
// integration runs this tick, so riders never detach mid-travel.
type ElevatorSystem struct{}

func NewElevatorSystem() *ElevatorSystem { return &ElevatorSystem{} }

func (s *ElevatorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.ElevatorComponent.Kind(), component.ElementComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, el *component.Elevator, elem *component.Element, t *component.Transform) {
		oldY := t.Y

		switch el.State {
		case component.ElevatorAtStart:
			if elem.Active {
				startLeg(el, t, true)
				stepElevator(el, t)
			}
		case component.ElevatorMovingToEnd, component.ElevatorMovingToStart:
			if !elem.Active {
				beginReturn(el, t)
			}
			stepElevator(el, t)
		case component.ElevatorPausedAtEnd, component.ElevatorPausedAtStart:
			if !elem.Active {
				beginReturn(el, t)
				stepElevator(el, t)
				break
			}
			el.PauseLeftMs -= common.TickMs
			if el.PauseLeftMs <= 0 {
				startLeg(el, t, el.State == component.ElevatorPausedAtStart)
				stepElevator(el, t)
			}
		case component.ElevatorReturning:
			if elem.Active {
				startLeg(el, t, true)
			}
			stepElevator(el, t)
		}

		el.DeltaY = t.Y - oldY
		if el.DeltaY != 0 {
			carryRiders(w, e, el, t, oldY)
		}
	})
}

// startLeg begins the powered leg toward EndY (toEnd) or StartY. A leg
// shorter than a pixel is skipped by snapping and flipping straight into
// the opposite leg instead of looping on a zero-duration tween.
func startLeg(el *component.Elevator, t *component.Transform, toEnd bool) {
	for i := 0; i < 2; i++ {
		target := el.StartY
		if toEnd {
			target = el.EndY
		}
		if common.Abs(target-t.Y) >= minLeg {
			el.GoingToEnd = toEnd
			el.Motion.Start(t.Y, target, el.Speed)
			if toEnd {
				el.State = component.ElevatorMovingToEnd
			} else {
				el.State = component.ElevatorMovingToStart
			}
			return
		}
		t.Y = target
		toEnd = !toEnd
	}
	el.State = component.ElevatorAtStart
}

// beginReturn starts the unpowered one-shot glide back to StartY. It uses
// the same speed as the powered cycle but never pauses on arrival.
func beginReturn(el *component.Elevator, t *component.Transform) {
	if common.Abs(el.StartY-t.Y) < minLeg {
		t.Y = el.StartY
		el.Motion.Cancel()
		el.State = component.ElevatorAtStart
		return
	}
	el.Motion.Start(t.Y, el.StartY, el.Speed)
	el.State = component.ElevatorReturning
}

func stepElevator(el *component.Elevator, t *component.Transform) {
	switch el.State {
	case component.ElevatorMovingToEnd:
		y, done := el.Motion.Step(common.TickMs)
		t.Y = y
		if done {
			el.State = component.ElevatorPausedAtEnd
			el.PauseLeftMs = el.PauseMs
		}
	case component.ElevatorMovingToStart:
		y, done := el.Motion.Step(common.TickMs)
		t.Y = y
		if done {
			el.State = component.ElevatorPausedAtStart
			el.PauseLeftMs = el.PauseMs
		}
	case component.ElevatorReturning:
		y, done := el.Motion.Step(common.TickMs)
		t.Y = y
		if done {
			el.State = component.ElevatorAtStart
		}
	}
}

// carryRiders shifts every dynamic body resting on the elevator's top
// surface by this tick's DeltaY. oldY is the platform top before the move;
// riders are matched against it because their own positions are still
// pre-move.
func carryRiders(w *ecs.World, platform ecs.Entity, el *component.Elevator, t *component.Transform, oldY float64) {
	plat, ok := ecs.Get(w, platform, component.PhysicsBodyComponent.Kind())
	if !ok || plat == nil {
		return
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(rider ecs.Entity, body *component.PhysicsBody, rt *component.Transform) {
		if rider == platform || body.Kind != component.BodyDynamic {
			return
		}
		if !common.OverlapsX(rt.X, body.Width, t.X, plat.Width) {
			return
		}
		bottom := rt.Y + body.Height
		if common.Abs(bottom-oldY) > riderTolerance {
			return
		}
		rt.Y += el.DeltaY
		if p := w.Physics(); p != nil {
			p.ShiftPosition(rider, 0, el.DeltaY)
		}
	})
}
