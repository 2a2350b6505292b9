package gamemath

import "math/rand"

// RandomUniform returns a value in [min, max) drawn from r.
func RandomUniform(r *rand.Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}
