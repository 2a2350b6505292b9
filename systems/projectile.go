package systems

import (
	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateProjectiles advances each projectile along its flight and removes the
// ones that reached their destination.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := float32(cfg.Dt())

	var landed []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		progress, finished := p.Flight.Update(dt)

		t := float64(progress)
		components.Object.Get(e).SetCenter(math.NewVec2(
			gamemath.Lerp(p.Start.X, p.Destination.X, t),
			gamemath.Lerp(p.Start.Y, p.Destination.Y, t),
		))

		if finished {
			landed = append(landed, e)
		}
	})

	for _, e := range landed {
		destroyEntity(ecs, e)
	}
}
