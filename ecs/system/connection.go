package system

import (
	"log"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// ConnectionSystem is the adjacency map from trigger IDs to the element
// IDs they control. It holds IDs only; entity ownership stays with the
// world's registry.
type ConnectionSystem struct {
	targets map[string][]string
}

func NewConnectionSystem() *ConnectionSystem {
	return &ConnectionSystem{targets: make(map[string][]string)}
}

// Connect appends targets to a trigger's list. Lists concatenate across
// calls rather than replace, so several wiring passes may independently
// target the same element.
func (c *ConnectionSystem) Connect(triggerID string, targetIDs ...string) {
	if c == nil || triggerID == "" || len(targetIDs) == 0 {
		return
	}
	c.targets[triggerID] = append(c.targets[triggerID], targetIDs...)
}

// Targets returns the ordered target list for a trigger.
func (c *ConnectionSystem) Targets(triggerID string) []string {
	if c == nil {
		return nil
	}
	return c.targets[triggerID]
}

// RegisterFromTriggers bulk-imports every trigger's static connection list
// at level build time.
func (c *ConnectionSystem) RegisterFromTriggers(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.TriggerComponent.Kind(), component.ElementComponent.Kind(), func(e ecs.Entity, tr *component.Trigger, el *component.Element) {
		if len(tr.ConnectedIDs) > 0 {
			c.Connect(el.ID, tr.ConnectedIDs...)
		}
	})
}

// HandleActivated propagates a trigger activation to every connected
// element. IDs that resolve to nothing are logged and skipped; a malformed
// level degrades, it doesn't crash.
func (c *ConnectionSystem) HandleActivated(w *ecs.World, triggerID string) {
	c.propagate(w, triggerID, Activate)
}

// HandleDeactivated propagates a trigger deactivation. Permanently powered
// elements shrug it off.
func (c *ConnectionSystem) HandleDeactivated(w *ecs.World, triggerID string) {
	c.propagate(w, triggerID, Deactivate)
}

func (c *ConnectionSystem) propagate(w *ecs.World, triggerID string, apply func(*ecs.World, ecs.Entity) bool) {
	if c == nil || w == nil {
		return
	}
	reg := w.Registry()
	for _, id := range c.targets[triggerID] {
		e, ok := reg.Lookup(id)
		if !ok {
			log.Printf("connection: trigger %q targets unknown element %q, skipping", triggerID, id)
			continue
		}
		apply(w, e)
	}
}
