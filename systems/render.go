package systems

import (
	"image/color"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawEntities renders the arena: monsters as boxes fading with their health,
// the player as a box and projectiles as discs.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	components.Monster.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		clr := cfg.UI.MonsterColor
		if hp := components.Health.Get(e); hp.Max > 0 {
			clr = scaleAlpha(clr, 0.4+0.6*float64(hp.Current)/float64(hp.Max))
		}
		if isFlashing(e) {
			clr = cfg.White
		}
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
	})

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := o.Center()
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(o.W/2), cfg.UI.ProjectileColor, true) //nolint:staticcheck // TODO: migrate to vector.FillCircle
	})

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		o := components.Object.Get(playerEntry)
		clr := cfg.UI.PlayerColor
		switch {
		case components.Health.Get(playerEntry).Dead:
			clr = cfg.LightRed
		case isFlashing(playerEntry):
			clr = cfg.Orange
		}
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
	}

	if cfg.Debug.DrawHitboxes {
		drawHitboxes(ecs, screen)
	}
}

// scaleAlpha fades a premultiplied color by f in [0, 1].
func scaleAlpha(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

func drawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	outline := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	for e := range components.Object.Iter(ecs.World) {
		o := components.Object.Get(e)
		vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 1, outline, false)
	}
}
