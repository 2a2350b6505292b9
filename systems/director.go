package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/shared/gamemath"
	"github.com/automoto/shuriken/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetDirector returns the session director, if one exists.
func GetDirector(ecs *ecs.ECS) (*components.DirectorData, bool) {
	entry, ok := components.Director.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Director.Get(entry), true
}

// SessionOutcome returns the director's outcome, or OutcomeNone without a director.
func SessionOutcome(ecs *ecs.ECS) components.Outcome {
	if d, ok := GetDirector(ecs); ok {
		return d.Outcome
	}
	return components.OutcomeNone
}

// UpdateDirector advances the spawn timer and spawns a monster when it runs out.
// The first monster appears on the first tick. Nothing spawns once the session
// has an outcome.
func UpdateDirector(ecs *ecs.ECS) {
	d, ok := GetDirector(ecs)
	if !ok || d.Finished() {
		return
	}

	d.Tick++
	if d.SpawnCountdown <= 0 {
		spawnMonster(ecs, d)
		d.SpawnCountdown = spawnIntervalTicks(d.SpawnInterval)
	}
	d.SpawnCountdown--
}

// spawnIntervalTicks converts the spawn interval to whole ticks, at least one.
func spawnIntervalTicks(seconds float64) int {
	ticks := int(math.Round(seconds * float64(cfg.C.TPS)))
	if ticks < 1 {
		return 1
	}
	return ticks
}

func spawnMonster(ecs *ecs.ECS, d *components.DirectorData) *donburi.Entry {
	x, y := SpawnPosition(d.Rand, d.SpawnMode,
		float64(cfg.C.Width), float64(cfg.C.Height),
		cfg.Monster.CollisionWidth, cfg.Monster.CollisionHeight,
	)
	d.Spawned++
	return factory.CreateMonster(ecs, x, y)
}

// SpawnPosition picks the center of a new w*h monster on a width*height screen.
//
// SpawnEdge places it just past the right edge, fully off screen, at a height
// that keeps it vertically inside the screen. SpawnAnywhere picks any point
// on the screen.
func SpawnPosition(r *rand.Rand, mode cfg.SpawnMode, width, height, w, h float64) (x, y float64) {
	switch mode {
	case cfg.SpawnAnywhere:
		return gamemath.RandomUniform(r, 0, width), gamemath.RandomUniform(r, 0, height)
	default:
		return width + w/2, gamemath.RandomUniform(r, h/2, height-h/2)
	}
}

// OnMonsterDeath counts a kill of a monster spawned on spawnTick and declares
// a win once the kill count passes the threshold.
func OnMonsterDeath(ecs *ecs.ECS, spawnTick int) {
	d, ok := GetDirector(ecs)
	if !ok {
		return
	}
	d.KillCount++
	d.KillTicks += max(d.Tick-spawnTick, 0)
	if d.KillCount > d.WinThreshold {
		endSession(ecs, d, components.OutcomeWin)
	}
}

// OnPlayerContact applies the monster's attack to the player and declares a
// loss if the player dies.
func OnPlayerContact(ecs *ecs.ECS, monster, player *donburi.Entry) (DamageResult, error) {
	damage := cfg.Monster.AttackDamage
	if monster.HasComponent(components.Monster) {
		damage = components.Monster.Get(monster).AttackDamage
	}

	result, err := ApplyDamage(ecs, player, damage)
	if err != nil {
		return result, err
	}
	if result.Died {
		if d, ok := GetDirector(ecs); ok {
			endSession(ecs, d, components.OutcomeLose)
		}
	}
	return result, nil
}

// endSession records the first outcome; later calls are ignored.
func endSession(ecs *ecs.ECS, d *components.DirectorData, outcome components.Outcome) {
	if d.Finished() {
		return
	}
	d.Outcome = outcome
	log.Printf("Session over: %s with %d kills after %d ticks (%d spawned)",
		outcome, d.KillCount, d.Tick, d.Spawned)

	if outcome == components.OutcomeWin {
		PlaySFX(ecs, cfg.SoundWin)
	} else {
		PlaySFX(ecs, cfg.SoundLose)
	}
	FadeOutMusic(ecs)
}

// WhilePlaying wraps a gameplay system so it stops running once the session
// has an outcome.
func WhilePlaying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if SessionOutcome(e) != components.OutcomeNone {
			return
		}
		system(e)
	}
}
