package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/systems/factory"
	"github.com/automoto/shuriken/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDamageKillsMonsterExactlyOnce(t *testing.T) {
	e := newTestECS(t)
	monster := factory.CreateMonster(e, 300, 100)
	handle := monster.Entity()

	r1, err := ApplyDamage(e, monster, 10)
	require.NoError(t, err)
	assert.Equal(t, DamageResult{NewHealth: 20}, r1)

	r2, err := ApplyDamage(e, monster, 10)
	require.NoError(t, err)
	assert.Equal(t, DamageResult{NewHealth: 10}, r2)

	r3, err := ApplyDamage(e, monster, 10)
	require.NoError(t, err)
	assert.Equal(t, DamageResult{NewHealth: 0, Died: true}, r3)
	assert.False(t, e.World.Valid(handle), "dead monster stays in the world")

	r4, err := ApplyDamage(e, monster, 10)
	require.NoError(t, err)
	assert.False(t, r4.Died)
}

func TestApplyDamageDiesOnceForAnySplit(t *testing.T) {
	r := rand.New(rand.NewSource(testSeed))
	for trial := 0; trial < 200; trial++ {
		e := newTestECS(t)
		monster := factory.CreateMonster(e, 300, 100)

		deaths, dealt := 0, 0
		for call := 0; call < 12; call++ {
			amount := r.Intn(cfg.Monster.Health/2 + 1)
			res, err := ApplyDamage(e, monster, amount)
			require.NoError(t, err)

			wasAlive := dealt < cfg.Monster.Health
			dealt += amount
			if res.Died {
				deaths++
				assert.True(t, wasAlive, "trial %d: died after already dead", trial)
				assert.GreaterOrEqual(t, dealt, cfg.Monster.Health, "trial %d: died early", trial)
			}
		}
		if dealt >= cfg.Monster.Health {
			assert.Equal(t, 1, deaths, "trial %d: dealt %d", trial, dealt)
		} else {
			assert.Zero(t, deaths, "trial %d: dealt %d", trial, dealt)
		}
	}
}

func TestApplyDamageOverkill(t *testing.T) {
	e := newTestECS(t)
	monster := factory.CreateMonster(e, 300, 100)

	r, err := ApplyDamage(e, monster, 45)
	require.NoError(t, err)
	assert.True(t, r.Died)
	assert.Equal(t, -15, r.NewHealth)
}

func TestApplyDamageRejectsNegativeAmount(t *testing.T) {
	e := newTestECS(t)
	monster := factory.CreateMonster(e, 300, 100)

	_, err := ApplyDamage(e, monster, -5)
	require.ErrorIs(t, err, ErrNegativeDamage)
	assert.Equal(t, cfg.Monster.Health, components.Health.Get(monster).Current)
}

func TestApplyDamageZeroLeavesHealth(t *testing.T) {
	e := newTestECS(t)
	monster := factory.CreateMonster(e, 300, 100)

	r, err := ApplyDamage(e, monster, 0)
	require.NoError(t, err)
	assert.Equal(t, DamageResult{NewHealth: cfg.Monster.Health}, r)
}

func TestPlayerDeathKeepsEntryButLeavesSpace(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 100, 100)
	monster := factory.CreateMonster(e, 100, 100)

	for i := 0; i < 2; i++ {
		r, err := ApplyDamage(e, player, 10)
		require.NoError(t, err)
		require.False(t, r.Died)
	}
	r, err := ApplyDamage(e, player, 10)
	require.NoError(t, err)
	assert.True(t, r.Died)

	require.True(t, player.Valid())
	hp := components.Health.Get(player)
	assert.True(t, hp.Dead)
	assert.Equal(t, 0, hp.Current)

	// The player is no longer a collision candidate.
	check := components.Object.Get(monster).Check(0, 0, tags.ResolvPlayer)
	assert.Nil(t, check)

	r, err = ApplyDamage(e, player, 10)
	require.NoError(t, err)
	assert.False(t, r.Died)
	assert.Equal(t, 0, components.Health.Get(player).Current)
}

func TestApplyDamageQueuesSounds(t *testing.T) {
	e := newTestECS(t)
	monster := factory.CreateMonster(e, 300, 100)

	_, _ = ApplyDamage(e, monster, 10)
	_, _ = ApplyDamage(e, monster, 20)

	assert.Equal(t, []cfg.SoundID{cfg.SoundHit, cfg.SoundMonsterDeath}, pendingSFX(e))
}
