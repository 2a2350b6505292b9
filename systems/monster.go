package systems

import (
	"github.com/automoto/shuriken/components"
	"github.com/automoto/shuriken/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateMonsters steers every monster one step toward the player's center.
func UpdateMonsters(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Center()

	components.Monster.Each(ecs.World, func(e *donburi.Entry) {
		monster := components.Monster.Get(e)
		obj := components.Object.Get(e)

		pos := obj.Center()
		x, y := gamemath.Seek(pos.X, pos.Y, target.X, target.Y, monster.MoveSpeed)
		obj.SetCenter(math.NewVec2(x, y))
	})
}
