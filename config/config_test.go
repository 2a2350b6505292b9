package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpawnMode(t *testing.T) {
	mode, err := ParseSpawnMode("edge")
	require.NoError(t, err)
	assert.Equal(t, SpawnEdge, mode)

	mode, err = ParseSpawnMode("anywhere")
	require.NoError(t, err)
	assert.Equal(t, SpawnAnywhere, mode)

	_, err = ParseSpawnMode("ceiling")
	assert.ErrorContains(t, err, "ceiling")
}

func TestDefaults(t *testing.T) {
	assert.InDelta(t, 1.0/60, Dt(), 1e-12)
	assert.Equal(t, 30, Player.Health)
	assert.Equal(t, 10, Monster.AttackDamage)
	assert.Equal(t, 10, Combat.ProjectileDamage)
	assert.Equal(t, 30, Director.WinThreshold)
	assert.Equal(t, 1.0, Director.SpawnIntervalSeconds)
	assert.Equal(t, SpawnEdge, Director.SpawnMode)
	assert.GreaterOrEqual(t, Monster.Health, 30)
	assert.LessOrEqual(t, Monster.Health, 100)
}
