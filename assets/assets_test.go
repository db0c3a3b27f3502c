package assets

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBlocksLevel(t *testing.T) {
	level, err := LoadLevel("levels/blocks.tmx")
	require.NoError(t, err)

	assert.Equal(t, 500, level.Width)
	assert.Equal(t, 500, level.Height)

	require.True(t, level.HasSpawn)
	assert.Equal(t, PlayerSpawn{X: 30, Y: 20}, level.PlayerSpawn)

	require.Len(t, level.Blocks, 4)
	// bottom-left corners; the map stores top-left
	bottoms := [][2]float64{{80, 500}, {180, 420}, {200, 340}, {300, 290}}
	for i, b := range level.Blocks {
		assert.Equal(t, 80.0, b.Width)
		assert.Equal(t, 80.0, b.Height)
		assert.Equal(t, bottoms[i][0], b.X, "block %d x", i)
		assert.Equal(t, bottoms[i][1], b.Y+b.Height, "block %d bottom", i)
	}

	assert.False(t, level.Blocks[0].HasColor)
	assert.True(t, level.Blocks[3].HasColor)
	assert.Equal(t, color.RGBA{A: 255}, level.Blocks[3].Color)
}

func TestLoadLevelMissing(t *testing.T) {
	_, err := LoadLevel("levels/nope.tmx")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoadLevel("levels/nope.tmx") })
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#1aa7c7")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0xa7, B: 0xc7, A: 255}, c)

	c, err = ParseHexColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)

	_, err = ParseHexColor("zzzzzz")
	assert.Error(t, err)
	_, err = ParseHexColor("#12345")
	assert.Error(t, err)
}

func TestParseHexColorPremultipliesAlpha(t *testing.T) {
	c, err := ParseHexColor("#80ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x80, A: 0x80}, c)

	c, err = ParseHexColor("#801aa7c7")
	require.NoError(t, err)
	want := color.RGBAModel.Convert(color.NRGBA{R: 0x1a, G: 0xa7, B: 0xc7, A: 0x80}).(color.RGBA)
	assert.Equal(t, want, c)
	assert.LessOrEqual(t, c.B, c.A)
}
