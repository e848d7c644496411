package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	assert.NotNil(t, HUD.Get())
	assert.Positive(t, Debug.Get().Metrics().Height.Ceil())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 8))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
