package ecs

import "log"

// Registry maps puzzle element IDs to entities. It is populated once at
// level build time and read-only during play; the connection and generator
// systems hold element IDs, never entity ownership.
type Registry struct {
	byID map[string]Entity
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Entity)}
}

// Register binds an element ID to an entity. A duplicate ID keeps the first
// binding and logs; a malformed level must not crash the simulation.
func (r *Registry) Register(id string, e Entity) {
	if r == nil || id == "" || !e.Valid() {
		return
	}
	if prev, ok := r.byID[id]; ok {
		log.Printf("registry: duplicate element id %q (keeping entity %v, dropping %v)", id, prev, e)
		return
	}
	r.byID[id] = e
}

// Lookup resolves an element ID to its entity.
func (r *Registry) Lookup(id string) (Entity, bool) {
	if r == nil {
		return 0, false
	}
	e, ok := r.byID[id]
	return e, ok
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byID)
}
