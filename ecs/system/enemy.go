package system

import (
	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// EnemySystem walks patrollers between their range ends, flipping at each
// end. Lethality comes from the hazard component they carry; this system
// only moves them.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem { return &EnemySystem{} }

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if enemy.Dir == 0 {
			enemy.Dir = 1
		}
		step := enemy.Speed * common.TickMs / 1000
		t.X += enemy.Dir * step
		if t.X <= enemy.MinX {
			t.X = enemy.MinX
			enemy.Dir = 1
		} else if t.X >= enemy.MaxX {
			t.X = enemy.MaxX
			enemy.Dir = -1
		}
		if p := w.Physics(); p != nil {
			p.SetPosition(e, t.X, t.Y)
		}
	})
}
