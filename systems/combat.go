package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNegativeDamage is returned when ApplyDamage is asked to heal.
var ErrNegativeDamage = errors.New("damage amount must not be negative")

// DamageResult reports the outcome of a single ApplyDamage call.
type DamageResult struct {
	NewHealth int
	Died      bool
}

// ApplyDamage subtracts amount from the entry's health. When health drops to zero
// or below the entry is marked dead and taken out of the collision space; monsters
// and projectiles are also removed from the world, the player stays so the session
// can read its final state. Died is true on exactly one call per entity.
//
// Damaging an entry that is already dead or no longer in the world does nothing.
func ApplyDamage(ecs *ecs.ECS, e *donburi.Entry, amount int) (DamageResult, error) {
	if amount < 0 {
		return DamageResult{}, fmt.Errorf("%w: got %d", ErrNegativeDamage, amount)
	}
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return DamageResult{}, nil
	}

	hp := components.Health.Get(e)
	if hp.Dead {
		return DamageResult{NewHealth: hp.Current}, nil
	}

	hp.Current -= amount
	if hp.Current > 0 {
		if amount > 0 {
			TriggerFlash(e)
		}
		if e.HasComponent(tags.Player) {
			PlaySFX(ecs, cfg.SoundPlayerHurt)
		} else {
			PlaySFX(ecs, cfg.SoundHit)
		}
		return DamageResult{NewHealth: hp.Current}, nil
	}

	hp.Dead = true
	result := DamageResult{NewHealth: hp.Current, Died: true}

	if e.HasComponent(tags.Player) {
		removeFromSpace(ecs, e)
		PlaySFX(ecs, cfg.SoundPlayerHurt)
		return result, nil
	}

	destroyEntity(ecs, e)
	PlaySFX(ecs, cfg.SoundMonsterDeath)
	return result, nil
}

// removeFromSpace unregisters the entry's collision object, if any.
func removeFromSpace(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
}

// destroyEntity removes the entry from both the collision space and the world.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	removeFromSpace(ecs, e)
	ecs.World.Remove(e.Entity())
}

// lookup resolves a handle to its live entry, or nil if it has been removed.
func lookup(ecs *ecs.ECS, handle donburi.Entity) *donburi.Entry {
	if !ecs.World.Valid(handle) {
		return nil
	}
	return ecs.World.Entry(handle)
}
