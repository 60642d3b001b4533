package ecs

import "github.com/milk9111/tethered/ecs/component"

// World owns entities, component tables, the signal queue, and the services
// the puzzle systems consult. There is exactly one logical thread of control;
// tables are built at level load and read-mostly afterwards.
type World struct {
	entities entityStore
	tables   map[component.ComponentID]*SparseSet
	events   EventQueue

	physics  PhysicsService
	registry *Registry
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		tables:   make(map[component.ComponentID]*SparseSet),
		registry: NewRegistry(),
	}
}

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity marks an entity as dead and drops its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, table := range w.tables {
		table.Remove(int(e.id()))
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entity handles.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func (w *World) table(id component.ComponentID) *SparseSet {
	if w.tables == nil {
		w.tables = make(map[component.ComponentID]*SparseSet)
	}
	t, ok := w.tables[id]
	if !ok {
		t = &SparseSet{}
		w.tables[id] = t
	}
	return t
}

func (w *World) addRaw(e Entity, id component.ComponentID, v any) error {
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.table(id).Set(int(e.id()), v)
	return nil
}

func (w *World) getRaw(e Entity, id component.ComponentID) (any, bool) {
	if w == nil || id == 0 || !w.entities.isAlive(e) {
		return nil, false
	}
	t, ok := w.tables[id]
	if !ok {
		return nil, false
	}
	v := t.Get(int(e.id()))
	if v == nil {
		return nil, false
	}
	return v, true
}

func (w *World) removeRaw(e Entity, id component.ComponentID) bool {
	if w == nil || id == 0 {
		return false
	}
	t, ok := w.tables[id]
	if !ok {
		return false
	}
	return t.Remove(int(e.id()))
}

// Query returns entities that carry every listed component kind.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	first, ok := w.tables[ids[0]]
	if !ok {
		return nil
	}
	// iterate the smallest table
	for _, id := range ids[1:] {
		t, ok := w.tables[id]
		if !ok {
			return nil
		}
		if t.Len() < first.Len() {
			first = t
		}
	}
	out := make([]Entity, 0, first.Len())
outer:
	for _, rawID := range first.Entities() {
		for _, id := range ids {
			if t, ok := w.tables[id]; !ok || !t.Has(rawID) {
				continue outer
			}
		}
		e := makeEntity(entityID(rawID), w.entities.generations[rawID-1])
		out = append(out, e)
	}
	return out
}

// Events returns the world signal queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysics attaches a physics service to this world.
func (w *World) SetPhysics(p PhysicsService) {
	if w == nil {
		return
	}
	w.physics = p
}

// Physics returns the attached physics service, if any.
func (w *World) Physics() PhysicsService {
	if w == nil {
		return nil
	}
	return w.physics
}

// Registry returns the element-ID registry.
func (w *World) Registry() *Registry {
	if w == nil {
		return nil
	}
	if w.registry == nil {
		w.registry = NewRegistry()
	}
	return w.registry
}
