package system

import (
	"log"
	"math"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// leverReach is how close the player must stand to flip a switch or lever.
const leverReach = 48.0

// CordSystem handles the player's extension cord and interact intents. The
// cord runs from the player's generator to at most one plugged terminal;
// plugging powers the terminal's linked element, unplugging cuts it unless
// a generator holds it permanently. Out-of-range interacts simply do
// nothing.
type CordSystem struct{}

func NewCordSystem() *CordSystem { return &CordSystem{} }

func (s *CordSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(playerE ecs.Entity, player *component.Player, in *component.Input, pt *component.Transform) {
		if !in.Interact {
			return
		}

		if plugged := ecs.Entity(player.PluggedTerminal); plugged.Valid() {
			s.unplug(w, playerE, player, plugged)
			return
		}

		if terminalE, ok := s.nearestTerminal(w, playerE); ok {
			s.plug(w, playerE, player, terminalE)
			return
		}

		if leverE, ok := s.nearestLever(w, playerE); ok {
			ToggleTrigger(w, leverE)
		}
	})
}

func (s *CordSystem) plug(w *ecs.World, playerE ecs.Entity, player *component.Player, terminalE ecs.Entity) {
	term, okT := ecs.Get(w, terminalE, component.TerminalComponent.Kind())
	el, okE := ecs.Get(w, terminalE, component.ElementComponent.Kind())
	if !okT || !okE || term.Plugged {
		return
	}

	term.Plugged = true
	player.PluggedTerminal = component.Entity(terminalE)
	Activate(w, terminalE)

	if target, ok := w.Registry().Lookup(term.LinkTo); ok {
		Activate(w, target)
	} else if term.LinkTo != "" {
		log.Printf("cord: terminal %q links unknown element %q, skipping", el.ID, term.LinkTo)
	}
	w.Events().Push(ecs.Event{Type: ecs.SignalCordChanged, ElementID: el.ID, TargetID: term.LinkTo})
}

func (s *CordSystem) unplug(w *ecs.World, playerE ecs.Entity, player *component.Player, terminalE ecs.Entity) {
	term, okT := ecs.Get(w, terminalE, component.TerminalComponent.Kind())
	el, okE := ecs.Get(w, terminalE, component.ElementComponent.Kind())
	if !okT || !okE {
		player.PluggedTerminal = 0
		return
	}

	term.Plugged = false
	player.PluggedTerminal = 0
	Deactivate(w, terminalE)

	// Permanently powered targets resist the unplug.
	if target, ok := w.Registry().Lookup(term.LinkTo); ok {
		Deactivate(w, target)
	}
	w.Events().Push(ecs.Event{Type: ecs.SignalCordChanged, ElementID: el.ID, TargetID: term.LinkTo})
}

func (s *CordSystem) nearestTerminal(w *ecs.World, playerE ecs.Entity) (ecs.Entity, bool) {
	pt, ok := ecs.Get(w, playerE, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}

	best := ecs.Entity(0)
	bestDist := math.Inf(1)
	ecs.ForEach2(w, component.TerminalComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, term *component.Terminal, t *component.Transform) {
		d := math.Hypot(t.X-pt.X, t.Y-pt.Y)
		if d <= term.Range && d < bestDist {
			best = e
			bestDist = d
		}
	})
	return best, best.Valid()
}

func (s *CordSystem) nearestLever(w *ecs.World, playerE ecs.Entity) (ecs.Entity, bool) {
	pt, ok := ecs.Get(w, playerE, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}

	best := ecs.Entity(0)
	bestDist := math.Inf(1)
	ecs.ForEach2(w, component.TriggerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tr *component.Trigger, t *component.Transform) {
		if tr.Type != component.TriggerSwitch && tr.Type != component.TriggerLever {
			return
		}
		d := math.Hypot(t.X-pt.X, t.Y-pt.Y)
		if d <= leverReach && d < bestDist {
			best = e
			bestDist = d
		}
	})
	return best, best.Valid()
}
