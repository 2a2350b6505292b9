package archetypes

import (
	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
	)
	Monster = newArchetype(
		tags.Monster,
		components.Monster,
		components.Object,
		components.Health,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Director = newArchetype(
		components.Director,
		components.Contacts,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
