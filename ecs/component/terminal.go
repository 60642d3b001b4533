package component

// Terminal is a plug point for the player's cord. LinkTo names the element
// the terminal powers while plugged.
type Terminal struct {
	LinkTo  string
	Range   float64
	Plugged bool
}

var TerminalComponent = NewComponent[Terminal]()
