package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs systems in a fixed order once per tick. Order is the only
// concurrency discipline in the simulation: rider carry runs before rider
// integration, prop checks run after both door and block moved, and signal
// propagation lands in the tick that raised it.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
