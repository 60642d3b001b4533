package component

// Motion is an explicit linear tween: a value moving from From to To over
// DurationMs, advanced once per tick. Completion is a check at the top of
// the owning system's update, never a callback, so two competing tweens can
// never run on the same element. Starting a new motion replaces the old
// one from the current interpolated value.
type Motion struct {
	From       float64
	To         float64
	ElapsedMs  float64
	DurationMs float64
	Running    bool
}

// Start begins a constant-speed motion; speed is units per second.
func (m *Motion) Start(from, to, speed float64) {
	dist := to - from
	if dist < 0 {
		dist = -dist
	}
	dur := 0.0
	if speed > 0 {
		dur = dist / speed * 1000
	}
	m.StartWithDuration(from, to, dur)
}

// StartWithDuration begins a motion with an explicit duration in ms.
func (m *Motion) StartWithDuration(from, to, durMs float64) {
	m.From = from
	m.To = to
	m.ElapsedMs = 0
	m.DurationMs = durMs
	m.Running = true
}

// Step advances the motion by dtMs and returns the current value plus
// whether the motion finished this step. A zero-length motion finishes
// immediately instead of producing a degenerate tween.
func (m *Motion) Step(dtMs float64) (float64, bool) {
	if !m.Running {
		return m.To, true
	}
	m.ElapsedMs += dtMs
	if m.DurationMs <= 0 || m.ElapsedMs >= m.DurationMs {
		m.Running = false
		return m.To, true
	}
	t := m.ElapsedMs / m.DurationMs
	return m.From + (m.To-m.From)*t, false
}

// Value returns the current interpolated value without advancing.
func (m *Motion) Value() float64 {
	if !m.Running || m.DurationMs <= 0 {
		return m.To
	}
	t := m.ElapsedMs / m.DurationMs
	if t > 1 {
		t = 1
	}
	return m.From + (m.To-m.From)*t
}

// Cancel stops the motion in place.
func (m *Motion) Cancel() {
	m.Running = false
}
