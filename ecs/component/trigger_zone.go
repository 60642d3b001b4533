package component

// TriggerZone fires a generator activation when the player enters its area.
// A OnceOnly zone disables itself permanently after the first fire; Enable
// is the explicit escape hatch and is never called automatically.
type TriggerZone struct {
	Width             float64
	Height            float64
	TargetGeneratorID string
	OnceOnly          bool
	Enabled           bool
}

func (z *TriggerZone) Enable() {
	if z == nil {
		return
	}
	z.Enabled = true
}

// TriggerZoneRuntime tracks edge state so a zone fires on enter, not on
// every overlapping tick.
type TriggerZoneRuntime struct {
	Inside bool
}

var TriggerZoneComponent = NewComponent[TriggerZone]()
var TriggerZoneRuntimeComponent = NewComponent[TriggerZoneRuntime]()
