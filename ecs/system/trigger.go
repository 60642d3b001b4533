package system

import (
	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// TriggerSystem drives pressure plates from body presence. Emission is
// edge-guarded: a plate held down every tick raises exactly one activation
// signal until it is released. Switches and levers are flipped by the
// interaction system instead and share the same guarded emission helpers.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem { return &TriggerSystem{} }

func (s *TriggerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.TriggerComponent.Kind(), component.ElementComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tr *component.Trigger, el *component.Element, t *component.Transform) {
		if tr.Type != component.TriggerPressurePlate {
			return
		}
		if s.platePressed(w, e, tr, t) {
			ActivateTrigger(w, e)
		} else {
			DeactivateTrigger(w, e)
		}
	})
}

// platePressed reports whether any dynamic body overlaps the plate area.
// Background blocks don't press plates; their sides aren't solid yet.
func (s *TriggerSystem) platePressed(w *ecs.World, plate ecs.Entity, tr *component.Trigger, t *component.Transform) bool {
	pressed := false
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, bt *component.Transform) {
		if pressed || e == plate || body.Kind != component.BodyDynamic {
			return
		}
		if block, ok := ecs.Get(w, e, component.PushBlockComponent.Kind()); ok && !block.InForeground {
			return
		}
		if common.OverlapsRect(bt.X, bt.Y, body.Width, body.Height, t.X, t.Y, tr.Width, tr.Height) {
			pressed = true
		}
	})
	return pressed
}

// ActivateTrigger flips a trigger on and emits trigger-activated. Guarded:
// repeated calls while already active are no-ops, so continuous contact
// never duplicates propagation.
func ActivateTrigger(w *ecs.World, e ecs.Entity) {
	el, ok := ecs.Get(w, e, component.ElementComponent.Kind())
	if !ok || el == nil || el.Active {
		return
	}
	el.Active = true
	w.Events().Push(ecs.Event{Type: ecs.SignalTriggerActivated, ElementID: el.ID})
}

// DeactivateTrigger flips a trigger off and emits trigger-deactivated,
// guarded symmetrically.
func DeactivateTrigger(w *ecs.World, e ecs.Entity) {
	el, ok := ecs.Get(w, e, component.ElementComponent.Kind())
	if !ok || el == nil || !el.Active {
		return
	}
	el.Active = false
	w.Events().Push(ecs.Event{Type: ecs.SignalTriggerDeactivated, ElementID: el.ID})
}

// ToggleTrigger flips a switch or lever, used by the interaction system.
func ToggleTrigger(w *ecs.World, e ecs.Entity) {
	el, ok := ecs.Get(w, e, component.ElementComponent.Kind())
	if !ok || el == nil {
		return
	}
	if el.Active {
		DeactivateTrigger(w, e)
	} else {
		ActivateTrigger(w, e)
	}
}
