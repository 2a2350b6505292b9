package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFontsLoad(t *testing.T) {
	for _, name := range []FontName{Regular, Small, Title} {
		face := name.Get()
		require.NotNil(t, face, name)
		assert.Positive(t, face.Metrics().Height.Ceil(), name)
	}
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadDefaultsParsesOnce(t *testing.T) {
	LoadDefaults()
	first := Regular.Get()

	LoadDefaults()
	assert.Same(t, first, Regular.Get())
}
