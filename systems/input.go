package systems

import (
	"math"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for gamepad and touch IDs to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.HasTap = false
	input.AimReleased = false

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Movement: digital actions first, an analog stick overrides them
	input.Move = components.Vector{}
	if input.Current[cfg.ActionMoveLeft] {
		input.Move.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		input.Move.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		input.Move.Y--
	}
	if input.Current[cfg.ActionMoveDown] {
		input.Move.Y++
	}
	if x, y, ok := readStick(gamepadIDs, ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical); ok {
		input.Move = components.Vector{X: x, Y: y}
		gamepadUsed = true
	}

	// Aim stick: remember the last deflection, fire when it springs back
	if x, y, ok := readStick(gamepadIDs, ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical); ok {
		input.AimStick = components.Vector{X: x, Y: y}
		input.AimHeld = true
		gamepadUsed = true
	} else if input.AimHeld {
		input.AimHeld = false
		input.AimReleased = true
	}

	// Taps: mouse click or touch released this frame
	touchUsed := pollTap(input)

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case touchUsed:
		input.LastInputMethod = components.InputTouch
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollTap records a released mouse click or touch as this frame's tap.
// It reports whether the tap came from a touch screen.
func pollTap(input *components.InputData) bool {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		input.Tap = components.Vector{X: float64(x), Y: float64(y)}
		input.HasTap = true
		return false
	}

	touchIDs = inpututil.AppendJustReleasedTouchIDs(touchIDs[:0])
	if len(touchIDs) == 0 {
		return false
	}
	x, y := inpututil.TouchPositionInPreviousTick(touchIDs[0])
	input.Tap = components.Vector{X: float64(x), Y: float64(y)}
	input.HasTap = true
	return true
}

// readStick returns the first stick deflected past the deadzone.
func readStick(gamepads []ebiten.GamepadID, hAxis, vAxis ebiten.StandardGamepadAxis) (x, y float64, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x = ebiten.StandardGamepadAxisValue(gpID, hAxis)
		y = ebiten.StandardGamepadAxisValue(gpID, vAxis)
		if math.Hypot(x, y) > deadzone {
			return x, y, true
		}
	}
	return 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}
