package system

import (
	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// minBridgeTweenMs floors the rotation duration so a bridge already at its
// target angle never produces a zero-duration tween.
const minBridgeTweenMs = 100.0

// DrawbridgeSystem rotates planks between hanging-closed and horizontal-
// open. The walkable footprint is a separate fixed body: it turns on only
// when an opening completes and turns off the instant a close begins, so
// nobody can stand on a surface that is already swinging away.
type DrawbridgeSystem struct{}

func NewDrawbridgeSystem() *DrawbridgeSystem { return &DrawbridgeSystem{} }

func (s *DrawbridgeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.DrawbridgeComponent.Kind(), component.ElementComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, br *component.Drawbridge, el *component.Element, t *component.Transform) {
		switch br.State {
		case component.BridgeClosed:
			if el.Active {
				startBridgeMotion(br, 0, component.BridgeOpening)
			}
		case component.BridgeOpen:
			if !el.Active {
				setFootprint(w, br, false)
				startBridgeMotion(br, br.ClosedAngle, component.BridgeClosing)
			}
		case component.BridgeOpening:
			if !el.Active {
				setFootprint(w, br, false)
				startBridgeMotion(br, br.ClosedAngle, component.BridgeClosing)
				break
			}
			a, done := br.Motion.Step(common.TickMs)
			br.Angle = a
			if done {
				br.State = component.BridgeOpen
				setFootprint(w, br, true)
			}
		case component.BridgeClosing:
			if el.Active {
				startBridgeMotion(br, 0, component.BridgeOpening)
				break
			}
			a, done := br.Motion.Step(common.TickMs)
			br.Angle = a
			if done {
				br.State = component.BridgeClosed
			}
		}
		t.Rotation = br.Angle
	})
}

func startBridgeMotion(br *component.Drawbridge, target float64, state component.BridgeState) {
	durMs := 0.0
	if br.Speed > 0 {
		durMs = common.Abs(target-br.Angle) / br.Speed * 1000
	}
	if durMs < minBridgeTweenMs {
		durMs = minBridgeTweenMs
	}
	br.Motion.StartWithDuration(br.Angle, target, durMs)
	br.State = state
}

func setFootprint(w *ecs.World, br *component.Drawbridge, enabled bool) {
	fp := ecs.Entity(br.Footprint)
	if !fp.Valid() {
		return
	}
	if p := w.Physics(); p != nil {
		p.SetFootprintEnabled(fp, enabled)
	}
}
