package component

// BridgeState is the drawbridge's rotation machine.
type BridgeState int

const (
	BridgeClosed BridgeState = iota
	BridgeOpening
	BridgeOpen
	BridgeClosing
)

func (s BridgeState) String() string {
	switch s {
	case BridgeClosed:
		return "closed"
	case BridgeOpening:
		return "opening"
	case BridgeOpen:
		return "open"
	case BridgeClosing:
		return "closing"
	}
	return "unknown"
}

// Drawbridge rotates a plank around a pivot between ClosedAngle (±90,
// hanging vertical) and 0 (horizontal, walkable). Footprint is a separate
// entity holding the fixed walkable surface body at the fully-open span; it
// is enabled only when an opening completes and disabled the instant a
// close begins.
type Drawbridge struct {
	PivotX      float64
	PivotY      float64
	Length      float64
	ClosedAngle float64 // +90 or -90 depending on hang direction
	Speed       float64 // degrees per second

	Angle     float64
	State     BridgeState
	Footprint Entity
	Motion    Motion
}

// Entity aliases the ECS handle without importing the parent package.
type Entity uint64

var DrawbridgeComponent = NewComponent[Drawbridge]()
