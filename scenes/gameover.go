package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the outcome, then starts a new game
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	stats        systems.SessionStats
	once         sync.Once
}

// NewGameOverScene creates a new game over scene for a finished session
func NewGameOverScene(sc SceneChanger, stats systems.SessionStats) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, stats: stats}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene))
	gs.ecs.AddSystem(systems.UpdateAudio)

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.ShowGameOver(gs.ecs, gs.stats.Outcome, gs.stats.Kills)
}
