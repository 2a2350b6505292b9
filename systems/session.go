package systems

import (
	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionCellSize is the resolv cell edge in pixels.
const collisionCellSize = 16

// SetupSession creates the collision space, the director and the player for a
// new game and returns the player entry.
func SetupSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, collisionCellSize, collisionCellSize)
	factory.CreateDirector(ecs, seed)
	return factory.CreateDefaultPlayer(ecs)
}

// AddGameplaySystems registers the per-tick gameplay systems in their required
// order. Input must be registered before them by the caller.
func AddGameplaySystems(ecs *ecs.ECS) {
	ecs.AddSystem(UpdatePause)
	ecs.AddSystem(WithGameplayChecks(UpdatePlayer))
	ecs.AddSystem(WithGameplayChecks(UpdateDirector))
	ecs.AddSystem(WithGameplayChecks(UpdateMonsters))
	ecs.AddSystem(WithGameplayChecks(UpdateProjectiles))
	ecs.AddSystem(UpdateObjects)
	ecs.AddSystem(WithGameplayChecks(UpdateCollisions))
	ecs.AddSystem(WithPauseCheck(UpdateEffects))
}

// SessionStats summarizes a session for logs and the game-over screen.
type SessionStats struct {
	Outcome    components.Outcome
	Kills      int
	Spawned    int
	Ticks      int
	ShotsFired int
	Health     int

	// MeanKillTicks is how long a killed monster lived on average.
	MeanKillTicks float64
}

// Stats collects the current SessionStats.
func Stats(ecs *ecs.ECS) SessionStats {
	var s SessionStats
	if d, ok := GetDirector(ecs); ok {
		s.Outcome = d.Outcome
		s.Kills = d.KillCount
		s.Spawned = d.Spawned
		s.Ticks = d.Tick
		if d.KillCount > 0 {
			s.MeanKillTicks = float64(d.KillTicks) / float64(d.KillCount)
		}
	}
	if p, ok := components.Player.First(ecs.World); ok {
		s.ShotsFired = components.Player.Get(p).ShotsFired
		s.Health = components.Health.Get(p).Current
	}
	return s
}
