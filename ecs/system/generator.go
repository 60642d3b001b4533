package system

import (
	"log"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// GeneratorSystem orchestrates generator activation cascades. Generators
// are elements themselves; their linked elements are resolved through the
// shared registry at cascade time.
type GeneratorSystem struct{}

func NewGeneratorSystem() *GeneratorSystem { return &GeneratorSystem{} }

// GeneratorStatus is the read-only introspection view of one generator.
type GeneratorStatus struct {
	ID      string
	Active  bool
	Primary bool
	Goal    bool
	Linked  []string
}

// ActivateGenerator powers a generator and cascades to its linked
// elements. Auto-activate links additionally record the generator as a
// permanent power source; those elements will resist later deactivation
// from unrelated sources such as a cord unplug. Unknown or already-active
// generators are reported, never fatal.
func (s *GeneratorSystem) ActivateGenerator(w *ecs.World, id string) {
	e, gen, el := s.resolve(w, id)
	if gen == nil {
		return
	}
	if el.Active {
		return
	}
	if !Activate(w, e) {
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.SignalGeneratorActivated, ElementID: id})
	if gen.Goal {
		w.Events().Push(ecs.Event{Type: ecs.SignalLevelComplete, ElementID: id})
	}

	reg := w.Registry()
	for _, linkID := range gen.LinkIDs {
		target, ok := reg.Lookup(linkID)
		if !ok {
			log.Printf("generator: %q links unknown element %q, skipping", id, linkID)
			continue
		}
		Activate(w, target)
	}
	for _, linkID := range gen.AutoActivateIDs {
		target, ok := reg.Lookup(linkID)
		if !ok {
			log.Printf("generator: %q auto-activates unknown element %q, skipping", id, linkID)
			continue
		}
		Activate(w, target)
		GrantPermanent(w, target, id)
	}
}

// DeactivateGenerator unpowers a generator and withdraws its permanent
// grants. An element stays active while any other still-active generator
// powers it; permanence is a set of sources, not a boolean.
func (s *GeneratorSystem) DeactivateGenerator(w *ecs.World, id string) {
	e, gen, el := s.resolve(w, id)
	if gen == nil {
		return
	}
	if !el.Active {
		return
	}

	reg := w.Registry()
	for _, linkID := range gen.AutoActivateIDs {
		target, ok := reg.Lookup(linkID)
		if !ok {
			continue
		}
		RevokePermanent(w, target, id)
	}
	for _, linkID := range gen.LinkIDs {
		target, ok := reg.Lookup(linkID)
		if !ok {
			continue
		}
		Deactivate(w, target)
	}

	if Deactivate(w, e) {
		w.Events().Push(ecs.Event{Type: ecs.SignalGeneratorDeactivated, ElementID: id})
	}
}

// ToggleGenerator flips a generator based on its current state.
func (s *GeneratorSystem) ToggleGenerator(w *ecs.World, id string) {
	_, gen, el := s.resolve(w, id)
	if gen == nil {
		return
	}
	if el.Active {
		s.DeactivateGenerator(w, id)
	} else {
		s.ActivateGenerator(w, id)
	}
}

// Status returns activation state, primary/goal flags, and the linked
// element list. Read-only, no side effects.
func (s *GeneratorSystem) Status(w *ecs.World, id string) (GeneratorStatus, bool) {
	_, gen, el := s.resolve(w, id)
	if gen == nil {
		return GeneratorStatus{}, false
	}
	linked := make([]string, 0, len(gen.LinkIDs)+len(gen.AutoActivateIDs))
	linked = append(linked, gen.LinkIDs...)
	linked = append(linked, gen.AutoActivateIDs...)
	return GeneratorStatus{
		ID:      id,
		Active:  el.Active,
		Primary: gen.Primary,
		Goal:    gen.Goal,
		Linked:  linked,
	}, true
}

func (s *GeneratorSystem) resolve(w *ecs.World, id string) (ecs.Entity, *component.Generator, *component.Element) {
	if w == nil {
		return 0, nil, nil
	}
	e, ok := w.Registry().Lookup(id)
	if !ok {
		log.Printf("generator: unknown generator %q", id)
		return 0, nil, nil
	}
	gen, okG := ecs.Get(w, e, component.GeneratorComponent.Kind())
	el, okE := ecs.Get(w, e, component.ElementComponent.Kind())
	if !okG || !okE {
		log.Printf("generator: element %q is not a generator", id)
		return 0, nil, nil
	}
	return e, gen, el
}
