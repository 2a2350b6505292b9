package gamemath

import "math"

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampLength scales (x, y) down so its length is at most max.
func ClampLength(x, y, max float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length <= max || length == 0 {
		return x, y
	}
	return x / length * max, y / length * max
}

// Overlaps reports whether two axis-aligned boxes intersect. Touching edges do not count.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	if ax >= bx+bw || bx >= ax+aw {
		return false
	}
	if ay >= by+bh || by >= ay+ah {
		return false
	}
	return true
}
