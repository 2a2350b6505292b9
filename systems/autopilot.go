package systems

import (
	"math"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAutopilot stands in for UpdateInput when nobody is playing. It tracks the
// nearest monster vertically and taps on it every Autopilot.FireEveryTicks ticks.
func UpdateAutopilot(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.HasTap = false
	input.AimReleased = false
	input.Move = components.Vector{}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	origin := components.Object.Get(playerEntry).Center()

	var (
		target components.Vector
		found  bool
		best   = math.Inf(1)
	)
	components.Monster.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Object.Get(e).Center()
		if pos.X < origin.X {
			return
		}
		if d := math.Hypot(pos.X-origin.X, pos.Y-origin.Y); d < best {
			best = d
			target = components.Vector{X: pos.X, Y: pos.Y}
			found = true
		}
	})
	if !found {
		return
	}

	if dy := target.Y - origin.Y; math.Abs(dy) > cfg.Autopilot.TrackDeadzone {
		input.Move.Y = math.Copysign(1, dy)
	}

	d, ok := GetDirector(ecs)
	every := cfg.Autopilot.FireEveryTicks
	if ok && every > 0 && d.Tick%every == 0 {
		input.Tap = target
		input.HasTap = true
	}
}
