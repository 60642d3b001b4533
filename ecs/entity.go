package ecs

import "strconv"

type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e > 0
}

// entityStore hands out generational entity handles. IDs start at 1 so a
// zero Entity is never valid; destroyed IDs are recycled with a bumped
// generation so stale handles fail IsAlive.
type entityStore struct {
	generations []generation
	free        []entityID
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		return makeEntity(id, s.generations[id-1])
	}
	s.generations = append(s.generations, 0)
	return makeEntity(entityID(len(s.generations)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.generations[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.generations) {
		return false
	}
	return s.generations[id-1] == e.generation()
}

func (s *entityStore) all() []Entity {
	free := make(map[entityID]struct{}, len(s.free))
	for _, id := range s.free {
		free[id] = struct{}{}
	}
	out := make([]Entity, 0, len(s.generations))
	for i, gen := range s.generations {
		id := entityID(i + 1)
		if _, dead := free[id]; dead {
			continue
		}
		out = append(out, makeEntity(id, gen))
	}
	return out
}
