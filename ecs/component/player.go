package component

// Player holds movement tuning and the player's live puzzle attachments:
// at most one grabbed block and at most one plugged terminal at a time.
type Player struct {
	MoveSpeed float64
	JumpSpeed float64
	SpawnX    float64
	SpawnY    float64
	// GeneratorID is the generator the cord originates from.
	GeneratorID string

	GrabbedBlock    Entity
	PluggedTerminal Entity
}

var PlayerComponent = NewComponent[Player]()
