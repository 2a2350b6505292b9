package gamemath

import "math"

// ShootDirection turns an aim offset (tap minus shooter, or a joystick release
// vector) into a unit direction. Backward shots (dx < 0) are rejected. A
// degenerate offset that cannot be normalized falls back to straight forward (1, 0).
func ShootDirection(dx, dy float64) (dirX, dirY float64, ok bool) {
	if dx < 0 {
		return 0, 0, false
	}

	length := math.Hypot(dx, dy)
	dirX = dx / length
	dirY = dy / length
	if math.IsNaN(dirX) || math.IsNaN(dirY) || math.IsInf(length, 0) {
		return 1, 0, true
	}
	return dirX, dirY, true
}

// Destination returns the point distance units from (x, y) along (dirX, dirY).
func Destination(x, y, dirX, dirY, distance float64) (float64, float64) {
	return x + dirX*distance, y + dirY*distance
}

// Lerp interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
