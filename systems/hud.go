package systems

import (
	"fmt"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's health bar, the kill counter and the best score.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	margin := float32(cfg.UI.HealthBarMargin)

	vector.FillRect(screen,
		margin, margin,
		float32(cfg.UI.HealthBarWidth), float32(cfg.UI.HealthBarHeight),
		cfg.UI.HealthBarBg, false)

	ratio := float32(0)
	if hp.Max > 0 && hp.Current > 0 {
		ratio = float32(hp.Current) / float32(hp.Max)
	}
	vector.FillRect(screen,
		margin, margin,
		float32(cfg.UI.HealthBarWidth)*ratio, float32(cfg.UI.HealthBarHeight),
		cfg.UI.HealthBarFg, false)

	d, ok := GetDirector(ecs)
	if !ok {
		return
	}
	face := fonts.Regular.Get()
	textY := int(cfg.UI.HealthBarMargin+cfg.UI.HealthBarHeight) + 18
	text.Draw(screen, fmt.Sprintf("Kills: %d / %d", d.KillCount, d.WinThreshold+1),
		face, int(cfg.UI.HealthBarMargin), textY, cfg.UI.HUDTextColor)

	best := fmt.Sprintf("Best: %d", max(BestKills(), d.KillCount))
	bounds := text.BoundString(face, best)
	text.Draw(screen, best, face,
		cfg.C.Width-bounds.Dx()-int(cfg.UI.HealthBarMargin), textY, cfg.UI.HUDTextColor)

	if float64(d.Tick) < cfg.UI.HintSeconds*float64(cfg.C.TPS) {
		method := components.InputKeyboard
		if in, ok := components.Input.First(ecs.World); ok {
			method = components.Input.Get(in).LastInputMethod
		}
		small := fonts.Small.Get()
		text.Draw(screen, ControlHint(method), small,
			int(cfg.UI.HealthBarMargin), cfg.C.Height-int(cfg.UI.HealthBarMargin), cfg.UI.HUDTextColor)
	}
}

// ControlHint describes the controls for the device the player last used.
func ControlHint(method components.InputMethod) string {
	switch method {
	case components.InputGamepad:
		return "Left stick to move, flick the right stick or press A to throw"
	case components.InputTouch:
		return "Tap to throw"
	default:
		return "WASD or arrows to move, click or press Space to throw"
	}
}
