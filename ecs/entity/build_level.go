package entity

import (
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
	"github.com/milk9111/tethered/levels"
)

// BuildLevel instantiates every entity a level declares and indexes puzzle
// elements by ID in the world registry. Unknown element kinds are logged
// and skipped; a level that references machinery this build doesn't know
// about still loads.
func BuildLevel(w *ecs.World, pw *ecs.PhysicsWorld, lvl *levels.Level) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("build level: nil world or level")
	}

	for _, p := range lvl.Platforms {
		NewPlatform(w, pw, p)
	}
	for _, sp := range lvl.Spikes {
		NewSpike(w, pw, sp)
	}
	for _, en := range lvl.Enemies {
		NewEnemy(w, en)
	}

	for _, spec := range lvl.Elements {
		e, err := buildElement(w, pw, spec)
		if err != nil {
			return 0, fmt.Errorf("build level: element %q: %w", spec.ID, err)
		}
		if e.Valid() {
			w.Registry().Register(spec.ID, e)
		}
	}

	player := NewPlayer(w, pw, lvl)
	return player, nil
}

// buildElement is the element factory over the closed kind set. The
// default arm logs and returns no entity rather than failing.
func buildElement(w *ecs.World, pw *ecs.PhysicsWorld, spec levels.ElementSpec) (ecs.Entity, error) {
	switch spec.Kind {
	case levels.KindDoor:
		return NewDoor(w, pw, spec)
	case levels.KindElevator:
		return NewElevator(w, pw, spec)
	case levels.KindDrawbridge:
		return NewDrawbridge(w, pw, spec)
	case levels.KindPushBlock:
		return NewPushBlock(w, pw, spec)
	case levels.KindTrigger:
		return NewTrigger(w, spec)
	case levels.KindTriggerZone:
		return NewTriggerZone(w, spec)
	case levels.KindGenerator:
		return NewGenerator(w, spec)
	case levels.KindTerminal:
		return NewTerminal(w, spec)
	default:
		log.Printf("build level: unknown element kind %q (id %q), skipping", spec.Kind, spec.ID)
		return 0, nil
	}
}

func addCore(w *ecs.World, e ecs.Entity, id string, x, y float64) error {
	if err := ecs.Add(w, e, component.ElementComponent.Kind(), &component.Element{ID: id}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
}

func addSprite(w *ecs.World, e ecs.Entity, width, height float64, col color.RGBA, layer int) {
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  width,
		Height: height,
		Color:  col,
		Layer:  layer,
	})
}
