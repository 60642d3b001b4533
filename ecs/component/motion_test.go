package component

import (
	"math"
	"testing"
)

func TestMotionConstantSpeed(t *testing.T) {
	var m Motion
	m.Start(486, 358, 120) // 128 px at 120 px/s

	if m.DurationMs < 1066 || m.DurationMs > 1067 {
		t.Fatalf("duration = %v ms, want ~1066.67", m.DurationMs)
	}

	const tick = 1000.0 / 60.0
	v, done := m.Step(tick)
	if done {
		t.Fatal("done after one tick")
	}
	want := 486 + (358-486)*tick/m.DurationMs
	if math.Abs(v-want) > 1e-9 {
		t.Fatalf("value after one tick = %v, want %v", v, want)
	}

	for i := 0; i < 80; i++ {
		v, done = m.Step(tick)
	}
	if !done || v != 358 {
		t.Fatalf("after overrun: v=%v done=%v, want exact target", v, done)
	}
}

func TestMotionZeroDurationFinishesImmediately(t *testing.T) {
	var m Motion
	m.StartWithDuration(100, 100, 0)
	v, done := m.Step(16.67)
	if !done || v != 100 {
		t.Fatalf("v=%v done=%v, want immediate finish", v, done)
	}
}

func TestMotionRestartReplacesInFlight(t *testing.T) {
	var m Motion
	m.Start(0, 100, 100)
	m.Step(500) // halfway

	mid := m.Value()
	m.Start(mid, 0, 100)
	if m.From != mid || m.To != 0 {
		t.Fatalf("restart from=%v to=%v, want %v to 0", m.From, m.To, mid)
	}
	if m.ElapsedMs != 0 {
		t.Fatal("restart kept stale elapsed time")
	}
}

func TestMotionCancelHoldsValue(t *testing.T) {
	var m Motion
	m.Start(0, 100, 100)
	m.Step(200)
	m.Cancel()
	if m.Running {
		t.Fatal("still running after cancel")
	}
	v, done := m.Step(1000)
	if !done || v != 100 {
		t.Fatalf("stopped motion stepped to v=%v done=%v", v, done)
	}
}

func TestElementPermanentPower(t *testing.T) {
	el := &Element{ID: "door_a", Active: true}
	if el.PermanentlyPowered() {
		t.Fatal("no sources yet")
	}
	el.PermanentBy = map[string]struct{}{"gen_a": {}, "gen_b": {}}
	if !el.PermanentlyPowered() {
		t.Fatal("two sources should hold")
	}
	delete(el.PermanentBy, "gen_a")
	if !el.PermanentlyPowered() {
		t.Fatal("one source should still hold")
	}
	delete(el.PermanentBy, "gen_b")
	if el.PermanentlyPowered() {
		t.Fatal("empty source set should not hold")
	}
}
