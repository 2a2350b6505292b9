package systems

import (
	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down hit flashes and removes the expired ones.
func UpdateEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
		if flash.Duration <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.Flash)
	}
}

// TriggerFlash starts (or restarts) the hit flash on an entity.
func TriggerFlash(entry *donburi.Entry) {
	if entry.HasComponent(components.Flash) {
		components.Flash.Get(entry).Duration = cfg.Combat.HitFlashTicks
		return
	}
	entry.AddComponent(components.Flash)
	components.Flash.Set(entry, &components.FlashData{Duration: cfg.Combat.HitFlashTicks})
}

// isFlashing reports whether the entity is mid hit flash.
func isFlashing(entry *donburi.Entry) bool {
	return entry.HasComponent(components.Flash) && components.Flash.Get(entry).Duration > 0
}
