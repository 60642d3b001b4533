package system

import (
	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

// grabSlack is the extra vertical allowance for the side-grab range check.
const grabSlack = 8.0

// PushBlockSystem drags grabbed blocks with their grabber and auto-releases
// the moment a block loses its supporting surface. Vertical motion stays
// with the physics integration; only the horizontal coupling is slaved to
// the grabber.
type PushBlockSystem struct{}

func NewPushBlockSystem() *PushBlockSystem { return &PushBlockSystem{} }

func (s *PushBlockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PushBlockComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, block *component.PushBlock, t *component.Transform) {
		if !block.Grabbed {
			return
		}
		if !MoveWith(w, e) {
			ReleaseBlock(w, e)
		}
	})
}

// GrabBlock attaches a block to the grabber, recording the horizontal
// offset so the block keeps its relative position. The first grab promotes
// the block to the foreground for good: its sides become solid.
func GrabBlock(w *ecs.World, blockE, grabberE ecs.Entity) bool {
	block, okB := ecs.Get(w, blockE, component.PushBlockComponent.Kind())
	bt, okT := ecs.Get(w, blockE, component.TransformComponent.Kind())
	gt, okG := ecs.Get(w, grabberE, component.TransformComponent.Kind())
	if !okB || !okT || !okG || block.Grabbed {
		return false
	}

	if !block.InForeground {
		block.InForeground = true
		if p := w.Physics(); p != nil {
			p.SetSideCollision(blockE, true)
		}
	}
	block.Grabbed = true
	block.Grabber = component.Entity(grabberE)
	block.GrabOffsetX = bt.X - gt.X
	return true
}

// ReleaseBlock drops the grabber reference and zeroes the block's
// horizontal velocity. The block stays foreground.
func ReleaseBlock(w *ecs.World, blockE ecs.Entity) {
	block, ok := ecs.Get(w, blockE, component.PushBlockComponent.Kind())
	if !ok || !block.Grabbed {
		return
	}
	block.Grabbed = false
	block.Grabber = 0
	if p := w.Physics(); p != nil {
		p.SetVelocityX(blockE, 0)
	}
}

// MoveWith slaves the block's X to its grabber for this tick. It returns
// false when the block is not resting on a supporting surface: a falling
// block cannot be dragged and the caller must release it immediately.
func MoveWith(w *ecs.World, blockE ecs.Entity) bool {
	block, okB := ecs.Get(w, blockE, component.PushBlockComponent.Kind())
	bt, okT := ecs.Get(w, blockE, component.TransformComponent.Kind())
	if !okB || !okT || !block.Grabbed {
		return false
	}
	p := w.Physics()
	if p != nil && !p.RestingOnGround(blockE) {
		return false
	}

	gt, ok := ecs.Get(w, ecs.Entity(block.Grabber), component.TransformComponent.Kind())
	if !ok {
		return false
	}
	targetX := gt.X + block.GrabOffsetX
	dx := targetX - bt.X
	if dx != 0 {
		bt.X = targetX
		if p != nil {
			p.ShiftPosition(blockE, dx, 0)
		}
	}
	return true
}

// BlockInRange reports whether the grabber can reach the block from the
// side: within 1.5 block sizes horizontally and half a block size plus a
// small slack vertically. The vertical bound deliberately rejects a grabber
// standing on top of the block.
func BlockInRange(w *ecs.World, blockE, grabberE ecs.Entity) bool {
	block, okB := ecs.Get(w, blockE, component.PushBlockComponent.Kind())
	bt, okT := ecs.Get(w, blockE, component.TransformComponent.Kind())
	gt, okG := ecs.Get(w, grabberE, component.TransformComponent.Kind())
	gb, okGB := ecs.Get(w, grabberE, component.PhysicsBodyComponent.Kind())
	if !okB || !okT || !okG {
		return false
	}

	blockCX := bt.X + block.Size/2
	blockCY := bt.Y + block.Size/2
	grabberW, grabberH := 0.0, 0.0
	if okGB && gb != nil {
		grabberW = gb.Width
		grabberH = gb.Height
	}
	grabberCX := gt.X + grabberW/2
	grabberCY := gt.Y + grabberH/2

	if common.Abs(grabberCX-blockCX) > block.Size*1.5 {
		return false
	}
	return common.Abs(grabberCY-blockCY) <= block.Size/2+grabSlack
}

// BlockUnderDoor reports whether the block sits in the door's closing path:
// the footprints overlap horizontally and the block's top edge is above the
// door's closed bottom edge. The prop system runs this every tick while a
// door closes.
func BlockUnderDoor(w *ecs.World, blockE, doorE ecs.Entity) bool {
	block, okB := ecs.Get(w, blockE, component.PushBlockComponent.Kind())
	bt, okT := ecs.Get(w, blockE, component.TransformComponent.Kind())
	door, okD := ecs.Get(w, doorE, component.DoorComponent.Kind())
	dt, okDT := ecs.Get(w, doorE, component.TransformComponent.Kind())
	db, okDB := ecs.Get(w, doorE, component.PhysicsBodyComponent.Kind())
	if !okB || !okT || !okD || !okDT || !okDB {
		return false
	}

	if !common.OverlapsX(bt.X, block.Size, dt.X, db.Width) {
		return false
	}
	closedBottom := door.ClosedY + db.Height
	return bt.Y < closedBottom
}
