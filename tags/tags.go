package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Monster    = donburi.NewTag().SetName("Monster")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for collision
const (
	ResolvPlayer     = "Player"
	ResolvMonster    = "Monster"
	ResolvProjectile = "Projectile"
)
