package component

// BodyKind selects how the physics world models an entity.
type BodyKind int

const (
	// BodyStatic never moves (platforms, spike sensors).
	BodyStatic BodyKind = iota
	// BodyKinematic is moved by a puzzle system's transform writes and
	// pushes dynamic bodies without being pushed back (doors, elevators,
	// bridge planks).
	BodyKinematic
	// BodyDynamic is integrated under gravity (player, push-blocks).
	BodyDynamic
)

// PhysicsBody is the collider configuration for an entity. Chipmunk runtime
// pointers live inside the physics world keyed by entity, not here, so the
// component stays plain data shared with tests.
type PhysicsBody struct {
	Kind   BodyKind
	Width  float64
	Height float64
	Mass   float64
	// Sensor bodies report overlap but never collide (hazards, zones).
	Sensor bool
	// TopOnly restricts the solid face to a thin top platform; the
	// push-block's walk-on surface uses it while the block is still
	// background.
	TopOnly bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
