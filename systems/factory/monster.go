package factory

import (
	"github.com/automoto/shuriken/archetypes"
	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMonster spawns a monster centered on (x, y) with the configured stats.
func CreateMonster(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	monster := archetypes.Monster.Spawn(ecs)

	w, h := cfg.Monster.CollisionWidth, cfg.Monster.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvMonster)
	obj.Data = monster
	components.Object.SetValue(monster, components.ObjectData{Object: obj})

	spawnTick := 0
	if d, ok := components.Director.First(ecs.World); ok {
		spawnTick = components.Director.Get(d).Tick
	}

	components.Monster.SetValue(monster, components.MonsterData{
		MoveSpeed:    cfg.Monster.MoveSpeed,
		AttackDamage: cfg.Monster.AttackDamage,
		SpawnTick:    spawnTick,
	})
	components.Health.SetValue(monster, components.HealthData{
		Current: cfg.Monster.Health,
		Max:     cfg.Monster.Health,
	})

	addToSpace(ecs, obj)
	return monster
}
