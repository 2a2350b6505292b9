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

// CreatePlayer spawns the player centered on (x, y) and registers it in the collision space.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		MoveSpeed: cfg.Player.MoveSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	addToSpace(ecs, obj)
	return player
}

// CreateDefaultPlayer spawns the player at its configured screen position.
func CreateDefaultPlayer(ecs *ecs.ECS) *donburi.Entry {
	return CreatePlayer(ecs,
		float64(cfg.C.Width)*cfg.Player.SpawnXRatio,
		float64(cfg.C.Height)*cfg.Player.SpawnYRatio,
	)
}
