package component

// Hazard kills the player on contact and sends them back to the level
// spawn. Spikes are static hazards; enemies carry one too.
type Hazard struct {
	Width  float64
	Height float64
}

var HazardComponent = NewComponent[Hazard]()
