package systems

import (
	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/shared/gamemath"
	"github.com/automoto/shuriken/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player with the movement input and fires on a tap, an
// aim-stick release or the fire action.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok || components.Health.Get(playerEntry).Dead {
		return
	}
	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	mx, my := gamemath.ClampLength(input.Move.X, input.Move.Y, 1)
	obj.X = gamemath.Clamp(obj.X+mx*player.MoveSpeed, 0, float64(cfg.C.Width)-obj.W)
	obj.Y = gamemath.Clamp(obj.Y+my*player.MoveSpeed, 0, float64(cfg.C.Height)-obj.H)

	if input.HasTap {
		origin := obj.Center()
		Shoot(ecs, playerEntry, input.Tap.X-origin.X, input.Tap.Y-origin.Y)
	}
	if input.AimReleased {
		Shoot(ecs, playerEntry, input.AimStick.X, input.AimStick.Y)
	}
	if GetAction(input, cfg.ActionFire).JustPressed {
		Shoot(ecs, playerEntry, input.AimStick.X, input.AimStick.Y)
	}
}

// Shoot fires a projectile from the player along the aim offset (dx, dy).
// Backward offsets are rejected and a degenerate offset fires straight ahead.
// It reports whether a projectile was launched.
func Shoot(ecs *ecs.ECS, playerEntry *donburi.Entry, dx, dy float64) bool {
	dirX, dirY, ok := gamemath.ShootDirection(dx, dy)
	if !ok {
		return false
	}

	factory.CreateProjectile(ecs, playerEntry, dirX, dirY)
	components.Player.Get(playerEntry).ShotsFired++
	PlaySFX(ecs, cfg.SoundShoot)
	return true
}
