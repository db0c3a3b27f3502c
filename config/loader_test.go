package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	Reset()
	require.NoError(t, Validate())
	assert.Equal(t, 30.0, Attraction.EffectiveMaxSpeed())
}

func TestApplyOverlaysOnlyGivenFields(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Apply([]byte(`
attraction:
  field_radius: 200
  edge_mode: wrap
platformer:
  jump_speed: 5
`))
	require.NoError(t, err)

	assert.Equal(t, 200.0, Attraction.FieldRadius)
	assert.Equal(t, EdgeWrap, Attraction.EdgeMode)
	assert.Equal(t, 20.0, Attraction.EffectiveMaxSpeed())
	// untouched values keep their defaults
	assert.Equal(t, 0.3, Attraction.Strength)
	assert.Equal(t, 5.0, Platformer.JumpSpeed)
	assert.Equal(t, 0.6, Platformer.Gravity)
	assert.Equal(t, Teal, Platformer.BackgroundColor)
	assert.Equal(t, 1024, C.Width)
}

func TestApplyRejectsInvalidWithoutCommitting(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Apply([]byte(`
attraction:
  field_radius: -1
  edge_mode: bounce
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "field_radius")
	assert.Contains(t, err.Error(), "edge_mode")

	assert.Equal(t, 300.0, Attraction.FieldRadius)
	assert.Equal(t, EdgeNone, Attraction.EdgeMode)
}

func TestSpeedCapsMustStayBelowSolidExtent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		ok   bool
	}{
		{"zero vertical cap", "platformer:\n  max_speed_y: 0\n", false},
		{"negative horizontal cap", "platformer:\n  max_speed_x: -1\n", false},
		{"vertical cap above floor", "platformer:\n  floor_thickness: 8\n", false},
		{"cap above cell size", "platformer:\n  cell_size: 10\n", false},
		{"caps at the limit", "platformer:\n  max_speed_x: 16\n  max_speed_y: 16\n", true},
		{"thicker floor keeps caps", "platformer:\n  floor_thickness: 64\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			err := Apply([]byte(tc.yaml))
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), "max_speed")
		})
	}
}

func TestCheckSolidExtent(t *testing.T) {
	Reset()
	p := Platformer

	assert.NoError(t, p.CheckSolidExtent("crate", 80, 80))
	assert.NoError(t, p.CheckSolidExtent("exact", p.MaxSpeedX, p.MaxSpeedY))

	err := p.CheckSolidExtent("ledge", 80, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "ledge")

	assert.Error(t, p.CheckSolidExtent("post", 2, 80))
}

func TestApplyRejectsMalformedYAML(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Apply([]byte("attraction: [unterminated"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoadCustomPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 640\n  height: 480\n"), 0o600))

	used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 640, C.Width)
	assert.Equal(t, 480, C.Height)
}

func TestLoadMissingCustomPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseDemo(t *testing.T) {
	d, err := ParseDemo(" Platformer ")
	require.NoError(t, err)
	assert.Equal(t, DemoPlatformer, d)

	d, err = ParseDemo("")
	require.NoError(t, err)
	assert.Equal(t, DemoNone, d)

	_, err = ParseDemo("pong")
	assert.True(t, errors.Is(err, ErrUnknownDemo))
}
