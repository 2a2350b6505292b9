package gamemath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeekStepsTowardTarget(t *testing.T) {
	x, y := Seek(500, 300, 100, 300, 1.0)
	assert.InDelta(t, 499.0, x, 1e-9)
	assert.InDelta(t, 300.0, y, 1e-9)
}

func TestSeekDiagonalKeepsSpeed(t *testing.T) {
	x, y := Seek(0, 0, 30, 40, 5)
	assert.InDelta(t, 3.0, x, 1e-9)
	assert.InDelta(t, 4.0, y, 1e-9)
}

func TestSeekCoincidingPositionsDoNotMove(t *testing.T) {
	x, y := Seek(42, 17, 42, 17, 3)
	assert.Equal(t, 42.0, x)
	assert.Equal(t, 17.0, y)
}

func TestSeekDoesNotOvershoot(t *testing.T) {
	x, y := Seek(10, 10, 10.5, 10, 4)
	assert.Equal(t, 10.5, x)
	assert.Equal(t, 10.0, y)
}

func TestSeekAlwaysGetsStrictlyCloser(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	for i := 0; i < 1000; i++ {
		x, y := RandomUniform(r, -500, 500), RandomUniform(r, -500, 500)
		tx, ty := RandomUniform(r, -500, 500), RandomUniform(r, -500, 500)
		speed := RandomUniform(r, 0.01, 50)

		before := math.Hypot(tx-x, ty-y)
		nx, ny := Seek(x, y, tx, ty, speed)
		after := math.Hypot(tx-nx, ty-ny)

		assert.Less(t, after, before, "step %d from (%v,%v) to (%v,%v) speed %v", i, x, y, tx, ty, speed)
	}
}
