package component

// Input is the player intent for the current tick. The shell writes it from
// real devices; tests write it directly, so the core never touches ebiten.
type Input struct {
	MoveX    float64 // -1..1
	Jump     bool
	Interact bool // plug/unplug, flip switches (edge)
	Grab     bool // grab/release blocks (edge)
}

var InputComponent = NewComponent[Input]()
