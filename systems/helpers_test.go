package systems

import (
	"testing"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const testSeed = 7

// newTestECS builds a world with a collision space and a director but no player.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, collisionCellSize, collisionCellSize)
	factory.CreateDirector(e, testSeed)
	return e
}

func director(t *testing.T, e *ecs.ECS) *components.DirectorData {
	t.Helper()
	d, ok := GetDirector(e)
	require.True(t, ok)
	return d
}

// moveTo recenters a body and refreshes its space cells.
func moveTo(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	obj.SetCenter(math.NewVec2(x, y))
	obj.Update()
}

func countMonsters(e *ecs.ECS) int {
	n := 0
	components.Monster.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	components.Projectile.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}
