package components

import (
	cfg "github.com/automoto/shuriken/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions
// plus the analog and pointer state the player system turns into movement and shots.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Move is the movement joystick vector, magnitude at most 1.
	Move Vector

	// Tap is the screen position released this frame (mouse or touch).
	Tap    Vector
	HasTap bool

	// AimStick holds the last aim-stick vector outside the deadzone. AimReleased is
	// set on the frame the stick springs back, which fires along AimStick.
	AimStick    Vector
	AimHeld     bool
	AimReleased bool

	LastInputMethod InputMethod
}

// Action returns the temporal state of an action for this frame.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()
