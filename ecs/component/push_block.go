package component

// PushBlock is a grabbable crate. It starts background (walk-through sides,
// walkable top) and becomes foreground-solid forever on its first grab.
// Grabber is a back-reference by handle only; the block never controls the
// player's lifecycle.
type PushBlock struct {
	Size         float64
	InForeground bool
	Grabbed      bool
	Grabber      Entity
	GrabOffsetX  float64
}

var PushBlockComponent = NewComponent[PushBlock]()
