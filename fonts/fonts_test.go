package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	assert.True(t, Loaded(HUD))
	assert.True(t, Loaded(Title))
	assert.NotNil(t, HUD.Get())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("nope"), 10)
	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
