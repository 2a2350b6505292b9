package systems

import (
	"github.com/automoto/shuriken/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of every body after this tick's movement.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
