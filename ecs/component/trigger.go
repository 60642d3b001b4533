package component

// TriggerType distinguishes continuous-presence sources from edge toggles.
type TriggerType string

const (
	TriggerPressurePlate TriggerType = "pressurePlate"
	TriggerSwitch        TriggerType = "switch"
	TriggerLever         TriggerType = "lever"
)

// Trigger is a signal source feeding the connection graph. ConnectedIDs is
// the static target list imported at level build; the live adjacency map is
// owned by the connection system.
type Trigger struct {
	Type         TriggerType
	ConnectedIDs []string
	Width        float64
	Height       float64
}

var TriggerComponent = NewComponent[Trigger]()
