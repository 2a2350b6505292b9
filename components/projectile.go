package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Start       math.Vec2
	Destination math.Vec2
	// Flight tweens travel progress from 0 to 1 over the projectile's lifetime.
	Flight *gween.Tween
	Damage int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
