package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates the outcome screen system. It fades the message in
// and starts a new game after GameOver.DisplaySeconds, or earlier on MenuSelect.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)
		dt := float32(cfg.Dt())

		if UpdateGameOverTimer(gameOver, dt) || GetAction(input, cfg.ActionMenuSelect).JustPressed {
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// UpdateGameOverTimer advances the fade and reports whether the screen has been
// shown long enough to restart.
func UpdateGameOverTimer(gameOver *components.GameOverData, dt float32) bool {
	if gameOver.Fade != nil {
		gameOver.Alpha, _ = gameOver.Fade.Update(dt)
	}
	gameOver.Elapsed += dt
	return gameOver.Elapsed >= cfg.GameOver.DisplaySeconds
}

// DrawGameOver renders the outcome message
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)
	screen.Fill(cfg.GameOver.BackgroundColor)

	message := cfg.GameOver.LoseMessage
	if gameOver.Outcome == components.OutcomeWin {
		message = cfg.GameOver.WinMessage
	}

	clr := fade(cfg.GameOver.TextColor, gameOver.Alpha)
	drawCentered(screen, message, fonts.Title, cfg.C.Height/2, clr)
	drawCentered(screen, fmt.Sprintf("Kills: %d   Best: %d", gameOver.Kills, BestKills()),
		fonts.Regular, cfg.C.Height/2+36, clr)
}

func drawCentered(screen *ebiten.Image, msg string, name fonts.FontName, y int, clr color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, msg)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, msg, face, x, y, clr)
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	// RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// ShowGameOver sets up the outcome screen for a finished session.
func ShowGameOver(e *ecs.ECS, outcome components.Outcome, kills int) {
	gameOver := GetOrCreateGameOver(e)
	gameOver.Outcome = outcome
	gameOver.Kills = kills
	gameOver.Alpha = 0
	gameOver.Elapsed = 0
	gameOver.Fade = gween.New(0, 1, cfg.GameOver.TransitionSeconds, ease.OutQuad)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.GameOver))
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
