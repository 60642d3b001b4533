package component

// DoorState is the slide door's position machine.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
	DoorClosing
	// DoorPropped is a frozen close: a block occupies the door's path.
	// Only the prop system enters or leaves this state; activation wins
	// over it like any other close motion.
	DoorPropped
)

func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpening:
		return "opening"
	case DoorOpen:
		return "open"
	case DoorClosing:
		return "closing"
	case DoorPropped:
		return "propped"
	}
	return "unknown"
}

// Door is a vertical slide door. ClosedY/OpenY are precomputed at build
// time from position, direction, and range; the transform Y is the live
// position.
type Door struct {
	ClosedY    float64
	OpenY      float64
	SlideSpeed float64 // px per second
	State      DoorState
	Propped    bool
	Motion     Motion
}

var DoorComponent = NewComponent[Door]()
