package systems

import (
	"testing"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileFliesToDestinationAndExpires(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 100, 100)
	p := factory.CreateProjectile(e, player, 1, 0)

	data := components.Projectile.Get(p)
	assert.InDelta(t, 100+cfg.Projectile.TravelDistance, data.Destination.X, 1e-9)
	assert.InDelta(t, 100.0, data.Destination.Y, 1e-9)

	half := int(float64(cfg.Projectile.FlightSeconds) * float64(cfg.C.TPS) / 2)
	for i := 0; i < half; i++ {
		UpdateProjectiles(e)
	}
	require.True(t, p.Valid())
	pos := components.Object.Get(p).Center()
	assert.InDelta(t, 100+cfg.Projectile.TravelDistance/2, pos.X, 1)
	assert.InDelta(t, 100.0, pos.Y, 1e-6)

	for i := 0; i < half+5; i++ {
		UpdateProjectiles(e)
	}
	assert.False(t, p.Valid(), "projectile is removed when its flight ends")
	assert.Zero(t, countProjectiles(e))
}
