package gamemath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShootDirection(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		wantX    float64
		wantY    float64
		wantFire bool
	}{
		{name: "zero vector defaults forward", dx: 0, dy: 0, wantX: 1, wantY: 0, wantFire: true},
		{name: "straight right", dx: 250, dy: 0, wantX: 1, wantY: 0, wantFire: true},
		{name: "diagonal is normalized", dx: 3, dy: 4, wantX: 0.6, wantY: 0.8, wantFire: true},
		{name: "straight down", dx: 0, dy: 9, wantX: 0, wantY: 1, wantFire: true},
		{name: "backward shot rejected", dx: -1, dy: 0, wantFire: false},
		{name: "backward diagonal rejected", dx: -0.001, dy: 50, wantFire: false},
		{name: "infinite offset defaults forward", dx: math.Inf(1), dy: 0, wantX: 1, wantY: 0, wantFire: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ShootDirection(tt.dx, tt.dy)
			require.Equal(t, tt.wantFire, ok)
			if !ok {
				return
			}
			assert.False(t, math.IsNaN(x) || math.IsNaN(y))
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestDestination(t *testing.T) {
	x, y := Destination(64, 180, 0.6, 0.8, 1000)
	assert.InDelta(t, 664.0, x, 1e-9)
	assert.InDelta(t, 980.0, y, 1e-9)
}

func TestRandomUniformStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v := RandomUniform(r, 14, 346)
		assert.GreaterOrEqual(t, v, 14.0)
		assert.Less(t, v, 346.0)
	}
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(0, 0, 10, 10, 5, 5, 10, 10))
	assert.False(t, Overlaps(0, 0, 10, 10, 10, 0, 10, 10), "touching edges")
	assert.False(t, Overlaps(0, 0, 10, 10, 0, 20, 10, 10))
}

func TestClampLength(t *testing.T) {
	x, y := ClampLength(3, 4, 1)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = ClampLength(0.2, 0.1, 1)
	assert.Equal(t, 0.2, x)
	assert.Equal(t, 0.1, y)
}
