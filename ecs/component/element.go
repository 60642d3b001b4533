package component

// Element is the identity and activation state every puzzle mechanism
// shares. Active only changes through the system helpers, which are
// idempotent; PermanentBy is the set of generator IDs currently granting
// permanent power. While it is non-empty, deactivation from any other
// source (a cord unplug, a released pressure plate) is refused.
type Element struct {
	ID          string
	Active      bool
	PermanentBy map[string]struct{}
}

func (e *Element) PermanentlyPowered() bool {
	return e != nil && len(e.PermanentBy) > 0
}

var ElementComponent = NewComponent[Element]()
