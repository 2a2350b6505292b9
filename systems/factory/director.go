package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/shuriken/archetypes"
	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDirector spawns the singleton director. A zero seed uses the clock.
func CreateDirector(ecs *ecs.ECS, seed int64) *donburi.Entry {
	director := archetypes.Director.Spawn(ecs)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	components.Director.SetValue(director, components.DirectorData{
		WinThreshold:  cfg.Director.WinThreshold,
		SpawnInterval: cfg.Director.SpawnIntervalSeconds,
		SpawnMode:     cfg.Director.SpawnMode,
		Rand:          rand.New(rand.NewSource(seed)),
	})
	components.Contacts.SetValue(director, components.ContactsData{
		Active: make(map[components.PairKey]struct{}),
	})

	return director
}
