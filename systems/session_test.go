package systems

import (
	"testing"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func runAutopilotSession(t *testing.T, seed int64, maxTicks int) SessionStats {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	SetupSession(e, seed)
	e.AddSystem(UpdateAutopilot)
	AddGameplaySystems(e)
	e.AddSystem(DiscardSFX)

	for i := 0; i < maxTicks && SessionOutcome(e) == components.OutcomeNone; i++ {
		e.Update()
	}
	return Stats(e)
}

func TestAutopilotSessionReachesAnOutcome(t *testing.T) {
	stats := runAutopilotSession(t, 42, 600*cfg.C.TPS)

	require.NotEqual(t, components.OutcomeNone, stats.Outcome)
	assert.Positive(t, stats.ShotsFired)
	assert.GreaterOrEqual(t, stats.Spawned, stats.Kills)

	switch stats.Outcome {
	case components.OutcomeWin:
		assert.Greater(t, stats.Kills, cfg.Director.WinThreshold)
	case components.OutcomeLose:
		assert.LessOrEqual(t, stats.Health, 0)
	}
}

func TestSessionIsDeterministicForSeed(t *testing.T) {
	a := runAutopilotSession(t, 1234, 20*cfg.C.TPS)
	b := runAutopilotSession(t, 1234, 20*cfg.C.TPS)
	assert.Equal(t, a, b)
}

func TestSystemsFreezeAfterOutcome(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	SetupSession(e, 5)
	AddGameplaySystems(e)

	e.Update()
	require.Equal(t, 1, countMonsters(e))

	director(t, e).Outcome = components.OutcomeWin
	monster, _ := components.Monster.First(e.World)
	before := components.Object.Get(monster).Center()

	for i := 0; i < 2*cfg.C.TPS; i++ {
		e.Update()
	}
	assert.Equal(t, 1, countMonsters(e))
	assert.Equal(t, before, components.Object.Get(monster).Center())
}
