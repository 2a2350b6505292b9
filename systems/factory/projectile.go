package factory

import (
	"github.com/automoto/shuriken/archetypes"
	"github.com/automoto/shuriken/components"
	"github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/shared/gamemath"
	"github.com/automoto/shuriken/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile launches a projectile from the owner's center along the unit
// direction (dirX, dirY). It flies config.Projectile.TravelDistance over
// config.Projectile.FlightSeconds and is removed when the flight ends.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, dirX, dirY float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	start := components.Object.Get(owner).Center()
	destX, destY := gamemath.Destination(start.X, start.Y, dirX, dirY, config.Projectile.TravelDistance)

	r := config.Projectile.Radius
	obj := resolv.NewObject(start.X-r, start.Y-r, r*2, r*2, tags.ResolvProjectile)
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})

	components.Projectile.Set(p, &components.ProjectileData{
		Start:       start,
		Destination: math.NewVec2(destX, destY),
		Flight:      gween.New(0, 1, config.Projectile.FlightSeconds, ease.Linear),
		Damage:      config.Combat.ProjectileDamage,
	})

	addToSpace(ecs, obj)
	return p
}
