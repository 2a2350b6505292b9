package systems

import (
	"testing"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fireInto launches a projectile from the player and places it on (x, y).
func fireInto(e *ecs.ECS, player *donburi.Entry, x, y float64) *donburi.Entry {
	p := factory.CreateProjectile(e, player, 1, 0)
	moveTo(p, x, y)
	return p
}

func TestProjectileHitDamagesMonsterAndIsDestroyed(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 50, 300)
	monster := factory.CreateMonster(e, 300, 100)
	monsterHandle := monster.Entity()
	d := director(t, e)

	for hit := 1; hit <= 2; hit++ {
		p := fireInto(e, player, 300, 100)
		UpdateCollisions(e)

		assert.False(t, p.Valid(), "projectile is destroyed on its first hit")
		assert.Equal(t, cfg.Monster.Health-hit*cfg.Combat.ProjectileDamage, components.Health.Get(monster).Current)
		assert.Zero(t, d.KillCount, "damage without death is not a kill")
	}

	fireInto(e, player, 300, 100)
	UpdateCollisions(e)

	assert.False(t, e.World.Valid(monsterHandle))
	assert.Equal(t, 1, d.KillCount)
	assert.Zero(t, countProjectiles(e))
}

func TestProjectileOnlyHitsOneMonster(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 50, 300)
	a := factory.CreateMonster(e, 300, 100)
	b := factory.CreateMonster(e, 305, 100)

	fireInto(e, player, 302, 100)
	UpdateCollisions(e)

	damaged := 0
	for _, m := range []*donburi.Entry{a, b} {
		if components.Health.Get(m).Current < cfg.Monster.Health {
			damaged++
		}
	}
	assert.Equal(t, 1, damaged)
}

func TestNearbyButSeparateBodiesDoNotCollide(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 50, 300)
	monster := factory.CreateMonster(e, 300, 100)

	// Same broadphase cell neighborhood, boxes apart.
	p := fireInto(e, player, 300+cfg.Monster.CollisionWidth/2+cfg.Projectile.Radius+1, 100)
	UpdateCollisions(e)

	assert.True(t, p.Valid())
	assert.Equal(t, cfg.Monster.Health, components.Health.Get(monster).Current)
}

func TestMonsterContactIsRoutedOncePerContact(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 200, 200)
	monster := factory.CreateMonster(e, 210, 200)
	hp := components.Health.Get(player)

	UpdateCollisions(e)
	assert.Equal(t, cfg.Player.Health-cfg.Monster.AttackDamage, hp.Current)

	for i := 0; i < 10; i++ {
		UpdateCollisions(e)
	}
	assert.Equal(t, cfg.Player.Health-cfg.Monster.AttackDamage, hp.Current, "sustained overlap is one contact")

	moveTo(monster, 400, 200)
	UpdateCollisions(e)
	assert.Equal(t, cfg.Player.Health-cfg.Monster.AttackDamage, hp.Current)

	moveTo(monster, 205, 200)
	UpdateCollisions(e)
	assert.Equal(t, cfg.Player.Health-2*cfg.Monster.AttackDamage, hp.Current, "a new contact damages again")
	assert.Equal(t, cfg.Monster.Health, components.Health.Get(monster).Current, "monster survives touching the player")
}

func TestThreeContactsLoseTheSession(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 200, 200)

	for i := 0; i < 3; i++ {
		factory.CreateMonster(e, 200, 200)
		UpdateCollisions(e)
	}

	require.True(t, components.Health.Get(player).Dead)
	assert.Equal(t, components.OutcomeLose, director(t, e).Outcome)
}
