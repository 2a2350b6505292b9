package gamemath

import "math"

// Seek advances (x, y) one tick toward (targetX, targetY) at speed, steering
// straight at the target's current position. The step never overshoots the
// target, and coinciding positions produce no movement.
func Seek(x, y, targetX, targetY, speed float64) (float64, float64) {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist == 0 || speed <= 0 {
		return x, y
	}
	if speed >= dist {
		return targetX, targetY
	}

	heading := math.Atan2(dy, dx)
	return x + math.Cos(heading)*speed, y + math.Sin(heading)*speed
}
