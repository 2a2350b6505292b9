package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/shuriken/systems"
	"github.com/automoto/shuriken/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen
type MenuScene struct {
	titleUI      *ui.TitleUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.titleUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.titleUI == nil {
		return
	}
	ms.titleUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.titleUI = ui.NewTitleUI(systems.BestKills(),
		func() { ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger)) },
		func() { os.Exit(0) },
	)
}
