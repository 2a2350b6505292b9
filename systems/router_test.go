package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestRoute(t *testing.T) {
	var (
		monster    = Body{Category: CategoryMonster, Handle: donburi.Entity(1)}
		monster2   = Body{Category: CategoryMonster, Handle: donburi.Entity(2)}
		projectile = Body{Category: CategoryProjectile, Handle: donburi.Entity(3)}
		player     = Body{Category: CategoryPlayer, Handle: donburi.Entity(4)}
		none       = Body{Category: CategoryNone, Handle: donburi.Entity(5)}
	)

	tests := []struct {
		name string
		a, b Body
		want Resolution
	}{
		{"projectile hits monster", monster, projectile,
			Resolution{Kind: ResolveProjectileHitsMonster, Monster: monster.Handle, Other: projectile.Handle}},
		{"monster touches player", monster, player,
			Resolution{Kind: ResolveMonsterTouchesPlayer, Monster: monster.Handle, Other: player.Handle}},
		{"two monsters", monster, monster2, Resolution{}},
		{"projectile and player", projectile, player, Resolution{}},
		{"two projectiles", projectile, projectile, Resolution{}},
		{"uncategorized", monster, none, Resolution{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.a, tt.b))
			assert.Equal(t, tt.want, Route(tt.b, tt.a), "route must not depend on order")
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "monster", CategoryMonster.String())
	assert.Equal(t, "projectile", CategoryProjectile.String())
	assert.Equal(t, "player", CategoryPlayer.String())
	assert.Equal(t, "none", CategoryNone.String())
}
