package systems

import (
	"testing"

	"github.com/automoto/shuriken/components"
	"github.com/stretchr/testify/assert"
)

func TestControlHintFollowsLastInputMethod(t *testing.T) {
	tests := []struct {
		method components.InputMethod
		want   string
	}{
		{components.InputKeyboard, "WASD or arrows to move, click or press Space to throw"},
		{components.InputGamepad, "Left stick to move, flick the right stick or press A to throw"},
		{components.InputTouch, "Tap to throw"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ControlHint(tt.method))
	}
}
