package component

// ElevatorState is the two-stop cycle machine.
type ElevatorState int

const (
	ElevatorAtStart ElevatorState = iota
	ElevatorMovingToEnd
	ElevatorPausedAtEnd
	ElevatorMovingToStart
	ElevatorPausedAtStart
	// ElevatorReturning is the unpowered one-shot glide back to StartY.
	// It moves at the same speed but never pauses at the end.
	ElevatorReturning
)

func (s ElevatorState) String() string {
	switch s {
	case ElevatorAtStart:
		return "at-start"
	case ElevatorMovingToEnd:
		return "moving-to-end"
	case ElevatorPausedAtEnd:
		return "paused-at-end"
	case ElevatorMovingToStart:
		return "moving-to-start"
	case ElevatorPausedAtStart:
		return "paused-at-start"
	case ElevatorReturning:
		return "returning"
	}
	return "unknown"
}

// Elevator cycles between StartY and EndY while powered, pausing PauseMs at
// each stop. DeltaY is the movement applied this tick; the elevator system
// consumes it to carry riders before their own integration and resets it
// every tick.
type Elevator struct {
	StartY  float64
	EndY    float64
	Speed   float64 // px per second
	PauseMs float64

	State       ElevatorState
	GoingToEnd  bool
	PauseLeftMs float64
	DeltaY      float64
	Motion      Motion
}

var ElevatorComponent = NewComponent[Elevator]()
