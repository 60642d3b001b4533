package system

import (
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// Activate powers an element. Activating an already-active element is a
// no-op; the return reports whether state changed.
func Activate(w *ecs.World, e ecs.Entity) bool {
	el, ok := ecs.Get(w, e, component.ElementComponent.Kind())
	if !ok || el == nil || el.Active {
		return false
	}
	el.Active = true
	return true
}

// Deactivate unpowers an element unless a generator still grants it
// permanent power. Deactivating an inactive element is a no-op.
func Deactivate(w *ecs.World, e ecs.Entity) bool {
	el, ok := ecs.Get(w, e, component.ElementComponent.Kind())
	if !ok || el == nil || !el.Active {
		return false
	}
	if el.PermanentlyPowered() {
		return false
	}
	el.Active = false
	return true
}

// Toggle flips an element based on its current state.
func Toggle(w *ecs.World, e ecs.Entity) bool {
	el, ok := ecs.Get(w, e, component.ElementComponent.Kind())
	if !ok || el == nil {
		return false
	}
	if el.Active {
		return Deactivate(w, e)
	}
	return Activate(w, e)
}

// GrantPermanent records generatorID as a permanent power source for the
// element. Permanent power is a set of source IDs, not a boolean, so two
// generators powering the same element don't fight.
func GrantPermanent(w *ecs.World, e ecs.Entity, generatorID string) {
	el, ok := ecs.Get(w, e, component.ElementComponent.Kind())
	if !ok || el == nil || generatorID == "" {
		return
	}
	if el.PermanentBy == nil {
		el.PermanentBy = make(map[string]struct{})
	}
	el.PermanentBy[generatorID] = struct{}{}
}

// RevokePermanent removes generatorID as a power source. When the last
// source is gone the element deactivates.
func RevokePermanent(w *ecs.World, e ecs.Entity, generatorID string) {
	el, ok := ecs.Get(w, e, component.ElementComponent.Kind())
	if !ok || el == nil {
		return
	}
	delete(el.PermanentBy, generatorID)
	if !el.PermanentlyPowered() {
		Deactivate(w, e)
	}
}
