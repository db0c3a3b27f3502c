package scenes

import (
	"testing"

	cfg "github.com/automoto/sketchbook/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChanger struct {
	scene interface{}
	quit  bool
}

func (r *recordingChanger) ChangeScene(scene interface{}) { r.scene = scene }
func (r *recordingChanger) Quit()                         { r.quit = true }

func TestNewDemoScene(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	sc := &recordingChanger{}

	scene, err := NewDemoScene(sc, cfg.DemoAttraction)
	require.NoError(t, err)
	assert.IsType(t, &AttractionScene{}, scene)

	scene, err = NewDemoScene(sc, cfg.DemoPlatformer)
	require.NoError(t, err)
	assert.IsType(t, &PlatformerScene{}, scene)

	_, err = NewDemoScene(sc, "pong")
	assert.ErrorIs(t, err, cfg.ErrUnknownDemo)
}

func recordDemos(t *testing.T) *[]cfg.DemoID {
	t.Helper()
	var launched []cfg.DemoID
	prev := rememberDemo
	rememberDemo = func(id cfg.DemoID) { launched = append(launched, id) }
	t.Cleanup(func() { rememberDemo = prev })
	return &launched
}

func TestStartSceneRemembersDemo(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	launched := recordDemos(t)

	scene, err := NewStartScene(&recordingChanger{}, cfg.DemoAttraction)
	require.NoError(t, err)
	assert.IsType(t, &AttractionScene{}, scene)
	assert.Equal(t, []cfg.DemoID{cfg.DemoAttraction}, *launched)

	_, err = NewStartScene(&recordingChanger{}, "pong")
	assert.ErrorIs(t, err, cfg.ErrUnknownDemo)
	assert.Len(t, *launched, 1)
}

func TestLaunchDemoRemembersDemo(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	launched := recordDemos(t)
	sc := &recordingChanger{}

	launchDemo(sc, cfg.DemoPlatformer)
	assert.IsType(t, &PlatformerScene{}, sc.scene)
	assert.Equal(t, []cfg.DemoID{cfg.DemoPlatformer}, *launched)

	sc.scene = nil
	launchDemo(sc, "pong")
	assert.Nil(t, sc.scene)
	assert.Len(t, *launched, 1)
}

func TestPlatformerLayoutIsLevelSize(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	scene, err := NewPlatformerScene(&recordingChanger{})
	require.NoError(t, err)

	w, h := scene.Layout(1920, 1080)
	assert.Equal(t, 500, w)
	assert.Equal(t, 500, h)
}

func TestPlatformerSceneMissingLevel(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cfg.Platformer.Level = "levels/missing.tmx"

	_, err := NewPlatformerScene(&recordingChanger{})
	assert.Error(t, err)
}

func TestAttractionLayoutFollowsWindow(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	scene := NewAttractionScene(&recordingChanger{})

	w, h := scene.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	bw, bh := scene.bounds()
	assert.Equal(t, 800.0, bw)
	assert.Equal(t, 600.0, bh)

	// Zero sizes keep the last known canvas
	w, h = scene.Layout(0, 0)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}
