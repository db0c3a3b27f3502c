package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultFonts(t *testing.T) {
	require.NoError(t, LoadDefaultFonts())
	for _, name := range []FontName{Regular, Title, Small} {
		assert.NotNil(t, name.Get(), name)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
