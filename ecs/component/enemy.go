package component

// Enemy is a horizontal patroller that walks between MinX and MaxX,
// flipping direction at each end.
type Enemy struct {
	MinX  float64
	MaxX  float64
	Speed float64 // px per second
	Dir   float64 // -1 or 1
}

var EnemyComponent = NewComponent[Enemy]()
