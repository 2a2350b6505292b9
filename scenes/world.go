package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one game session and hands over to the game-over screen
// when the director reports an outcome.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	done         bool
}

// NewWorldScene creates a new game session scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.done {
		return
	}
	if stats := systems.Stats(ws.ecs); stats.Outcome != components.OutcomeNone {
		ws.done = true
		if err := systems.SaveSessionResult(stats); err != nil {
			log.Printf("Warning: Could not save session result: %v", err)
		}
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, stats))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	systems.SetupSession(ws.ecs, cfg.Director.Seed)

	// Input first, audio drains whatever the tick queued
	ws.ecs.AddSystem(systems.UpdateInput)
	systems.AddGameplaySystems(ws.ecs)
	ws.ecs.AddSystem(systems.UpdateAudio)
	systems.PlayMusic(ws.ecs)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ws.ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ws.ecs.AddRenderer(cfg.HUD, systems.DrawPause)
}
