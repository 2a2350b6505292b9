package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData drives the outcome screen (singleton component)
type GameOverData struct {
	Outcome Outcome
	Kills   int

	Fade    *gween.Tween // text opacity, 0 to 1
	Alpha   float32
	Elapsed float32 // seconds since the screen appeared
}

var GameOver = donburi.NewComponentType[GameOverData]()
