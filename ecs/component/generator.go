package component

// Generator is a power source. The player's tether originates at the
// primary generator; activating the goal generator completes the level.
// LinkIDs receive a one-shot activation; AutoActivateIDs additionally get
// this generator recorded as a permanent power source.
type Generator struct {
	Primary         bool
	Goal            bool
	LinkIDs         []string
	AutoActivateIDs []string
}

var GeneratorComponent = NewComponent[Generator]()
