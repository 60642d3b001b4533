package ecs

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/tethered/ecs/component"
)

const (
	ctSolid cp.CollisionType = iota + 1
	ctDynamic
	ctGroundSensor
	ctHazard
)

const (
	catStatic uint = 1 << iota
	catKinematic
	catPlayer
	catBlock
	catBlockTop
)

const allCats = ^uint(0)

// PhysicsWorld wraps a Chipmunk space and implements PhysicsService. It
// owns every cp body and shape, keyed by entity; components stay plain
// data. Kinematic movers (doors, elevators, bridge planks) are driven by
// transform writes from the puzzle systems and converted to velocities so
// the space pushes dynamic bodies out of their way.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[Entity]*bodyRec
}

type bodyRec struct {
	kind        component.BodyKind
	body        *cp.Body
	shape       *cp.Shape
	topShape    *cp.Shape
	groundShape *cp.Shape
	width       float64
	height      float64
	grounded    int
	sideSolid   bool
	footprintOn bool
}

func NewPhysicsWorld(gravity float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	pw := &PhysicsWorld{
		space:  space,
		bodies: make(map[Entity]*bodyRec),
	}
	pw.setupGroundHandler()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func (pw *PhysicsWorld) setupGroundHandler() {
	handler := pw.space.NewWildcardCollisionHandler(ctGroundSensor)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, _ interface{}) bool {
		sensor, other := arb.Shapes()
		if other.Sensor() {
			return true
		}
		if rec, ok := sensor.UserData.(*bodyRec); ok {
			rec.grounded++
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, _ interface{}) {
		sensor, other := arb.Shapes()
		if other.Sensor() {
			return
		}
		if rec, ok := sensor.UserData.(*bodyRec); ok && rec.grounded > 0 {
			rec.grounded--
		}
	}
}

// AddStatic registers a fixed solid box (platforms, walls).
func (pw *PhysicsWorld) AddStatic(e Entity, x, y, w, h float64) {
	if pw == nil || pw.space == nil {
		return
	}
	bb := cp.BB{L: x, B: y, R: x + w, T: y + h}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(ctSolid)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catStatic, allCats))
	pw.space.AddShape(shape)
	pw.bodies[e] = &bodyRec{kind: component.BodyStatic, shape: shape, width: w, height: h, sideSolid: true, footprintOn: true}
}

// AddSensor registers a fixed sensor box (spikes, zones). It reports
// overlap but deflects nothing.
func (pw *PhysicsWorld) AddSensor(e Entity, x, y, w, h float64) {
	if pw == nil || pw.space == nil {
		return
	}
	bb := cp.BB{L: x, B: y, R: x + w, T: y + h}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(ctHazard)
	pw.space.AddShape(shape)
	pw.bodies[e] = &bodyRec{kind: component.BodyStatic, shape: shape, width: w, height: h}
}

// AddKinematic registers a mover body. Its position is slaved to the
// entity transform by SyncKinematic before every step.
func (pw *PhysicsWorld) AddKinematic(e Entity, x, y, w, h float64) {
	if pw == nil || pw.space == nil {
		return
	}
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x + w/2, Y: y + h/2})
	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0.9)
	shape.SetCollisionType(ctSolid)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catKinematic, allCats))
	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = &bodyRec{kind: component.BodyKinematic, body: body, shape: shape, width: w, height: h, sideSolid: true, footprintOn: true}
}

// AddDynamic registers an integrated body with a ground sensor under its
// feet. isBlock marks push-blocks: their side faces start walk-through and
// they carry an always-solid thin top platform.
func (pw *PhysicsWorld) AddDynamic(e Entity, x, y, w, h, mass float64, isBlock bool) {
	if pw == nil || pw.space == nil {
		return
	}
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x + w/2, Y: y + h/2})

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(ctDynamic)

	rec := &bodyRec{kind: component.BodyDynamic, body: body, shape: shape, width: w, height: h, sideSolid: !isBlock}
	if isBlock {
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catBlock, catStatic|catKinematic|catBlock))

		// Thin always-on walkable strip along the block's top edge.
		topBB := cp.BB{L: -w / 2, B: -h / 2, R: w / 2, T: -h/2 + 2}
		top := cp.NewBox2(body, topBB, 0)
		top.SetFriction(0.8)
		top.SetCollisionType(ctSolid)
		top.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catBlockTop, catPlayer))
		rec.topShape = top
	} else {
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catPlayer, allCats))
	}

	groundBB := cp.BB{L: -w * 0.45, B: h / 2, R: w * 0.45, T: h/2 + 3}
	ground := cp.NewBox2(body, groundBB, 0)
	ground.SetSensor(true)
	ground.SetCollisionType(ctGroundSensor)
	ground.UserData = rec
	rec.groundShape = ground

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	if rec.topShape != nil {
		pw.space.AddShape(rec.topShape)
	}
	pw.space.AddShape(ground)
	pw.bodies[e] = rec
}

// SyncKinematic drives a kinematic body toward the transform's top-left
// position over one step, so the space carries momentum into anything in
// the way instead of teleporting through it.
func (pw *PhysicsWorld) SyncKinematic(e Entity, x, y, dt float64) {
	rec, ok := pw.rec(e)
	if !ok || rec.kind != component.BodyKinematic || rec.body == nil || dt <= 0 {
		return
	}
	target := cp.Vector{X: x + rec.width/2, Y: y + rec.height/2}
	pos := rec.body.Position()
	rec.body.SetVelocityVector(target.Sub(pos).Mult(1 / dt))
}

// SettleKinematic zeroes a mover's velocity and snaps it after a step.
func (pw *PhysicsWorld) SettleKinematic(e Entity, x, y float64) {
	rec, ok := pw.rec(e)
	if !ok || rec.kind != component.BodyKinematic || rec.body == nil {
		return
	}
	rec.body.SetVelocity(0, 0)
	rec.body.SetPosition(cp.Vector{X: x + rec.width/2, Y: y + rec.height/2})
}

// Position returns the body's top-left position.
func (pw *PhysicsWorld) Position(e Entity) (float64, float64, bool) {
	rec, ok := pw.rec(e)
	if !ok || rec.body == nil {
		return 0, 0, false
	}
	pos := rec.body.Position()
	return pos.X - rec.width/2, pos.Y - rec.height/2, true
}

// Step advances the simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// RestingOnGround implements PhysicsService.
func (pw *PhysicsWorld) RestingOnGround(e Entity) bool {
	rec, ok := pw.rec(e)
	return ok && rec.grounded > 0
}

// ShiftPosition implements PhysicsService.
func (pw *PhysicsWorld) ShiftPosition(e Entity, dx, dy float64) {
	rec, ok := pw.rec(e)
	if !ok || rec.body == nil {
		return
	}
	pos := rec.body.Position()
	rec.body.SetPosition(cp.Vector{X: pos.X + dx, Y: pos.Y + dy})
	rec.body.EachShape(pw.space.ReindexShape)
}

// SetPosition implements PhysicsService; x, y are top-left.
func (pw *PhysicsWorld) SetPosition(e Entity, x, y float64) {
	rec, ok := pw.rec(e)
	if !ok || rec.body == nil {
		return
	}
	rec.body.SetPosition(cp.Vector{X: x + rec.width/2, Y: y + rec.height/2})
	rec.body.EachShape(pw.space.ReindexShape)
}

// SetVelocityX implements PhysicsService.
func (pw *PhysicsWorld) SetVelocityX(e Entity, vx float64) {
	rec, ok := pw.rec(e)
	if !ok || rec.body == nil {
		return
	}
	v := rec.body.Velocity()
	rec.body.SetVelocity(vx, v.Y)
}

// SetVelocityY implements PhysicsService.
func (pw *PhysicsWorld) SetVelocityY(e Entity, vy float64) {
	rec, ok := pw.rec(e)
	if !ok || rec.body == nil {
		return
	}
	v := rec.body.Velocity()
	rec.body.SetVelocity(v.X, vy)
}

// SetSideCollision implements PhysicsService. Promoting a block to solid
// widens its collision mask to include the player.
func (pw *PhysicsWorld) SetSideCollision(e Entity, solid bool) {
	rec, ok := pw.rec(e)
	if !ok || rec.shape == nil || rec.sideSolid == solid {
		return
	}
	rec.sideSolid = solid
	mask := catStatic | catKinematic | catBlock
	if solid {
		mask |= catPlayer
	}
	rec.shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catBlock, mask))
}

// SetFootprintEnabled implements PhysicsService. A disabled footprint's
// shape leaves the space entirely; nothing can stand on a ghost surface.
func (pw *PhysicsWorld) SetFootprintEnabled(e Entity, enabled bool) {
	rec, ok := pw.rec(e)
	if !ok || rec.shape == nil || rec.footprintOn == enabled {
		return
	}
	rec.footprintOn = enabled
	if enabled {
		pw.space.AddShape(rec.shape)
	} else {
		pw.space.RemoveShape(rec.shape)
	}
}

func (pw *PhysicsWorld) rec(e Entity) (*bodyRec, bool) {
	if pw == nil {
		return nil, false
	}
	rec, ok := pw.bodies[e]
	return rec, ok
}

var _ PhysicsService = (*PhysicsWorld)(nil)
