package ecs

// PhysicsService is the collision surface the puzzle systems stand on. The
// production implementation wraps a Chipmunk space (PhysicsWorld); tests
// substitute a stub. Rider carry, propping, and range checks are all rules
// layered on top of these queries.
type PhysicsService interface {
	// RestingOnGround reports whether the entity's body is supported from
	// below this tick.
	RestingOnGround(e Entity) bool
	// ShiftPosition teleports the entity's body by a delta, used to carry
	// riders with a moving platform before their own integration runs.
	ShiftPosition(e Entity, dx, dy float64)
	// SetPosition teleports the entity's body, used for respawns.
	SetPosition(e Entity, x, y float64)
	// SetVelocityX overrides horizontal velocity (player walk, grabbed
	// block drag, release).
	SetVelocityX(e Entity, vx float64)
	// SetVelocityY overrides vertical velocity (jump impulse).
	SetVelocityY(e Entity, vy float64)
	// SetSideCollision toggles whether the entity's side faces are solid.
	// A background push-block is walk-through; its first grab makes it
	// solid for good.
	SetSideCollision(e Entity, solid bool)
	// SetFootprintEnabled toggles a walkable collision footprint on or
	// off, used by the drawbridge's open-surface body.
	SetFootprintEnabled(e Entity, enabled bool)
}
