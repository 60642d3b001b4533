package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	TileSize = 32

	// TickMs is the fixed simulation timestep in milliseconds. Every motion
	// state in the puzzle core advances by exactly this much per update.
	TickMs = 1000.0 / 60.0

	Gravity = 1800.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// OverlapsX reports whether the horizontal spans [ax, ax+aw) and
// [bx, bx+bw) intersect.
func OverlapsX(ax, aw, bx, bw float64) bool {
	return ax < bx+bw && bx < ax+aw
}

// OverlapsRect reports whether two axis-aligned rects intersect.
func OverlapsRect(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
