package systems

import (
	"testing"

	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPauseToggle(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)

	input.Current[cfg.ActionPause] = true
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	// Held key does not toggle again
	input.Previous = input.Current
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	input.Previous[cfg.ActionPause] = false
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}

func TestPauseFadeIn(t *testing.T) {
	pause := &components.PauseData{}
	SetPaused(pause, true)
	assert.Equal(t, float32(0), pause.Alpha)
	assert.NotNil(t, pause.Fade)

	stepPauseFade(pause, cfg.Pause.FadeSeconds/2)
	assert.Greater(t, pause.Alpha, float32(0))
	assert.Less(t, pause.Alpha, float32(1))

	stepPauseFade(pause, cfg.Pause.FadeSeconds)
	assert.Equal(t, float32(1), pause.Alpha)
	assert.Nil(t, pause.Fade)

	SetPaused(pause, false)
	assert.Equal(t, float32(0), pause.Alpha)
}

func TestWithPauseCheck(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	calls := 0
	system := WithPauseCheck(func(*ecs.ECS) { calls++ })

	system(e)
	GetOrCreatePause(e).IsPaused = true
	system(e)

	assert.Equal(t, 1, calls)
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionJump] = true

	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionJump))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(input, cfg.ActionJump))

	input.Current[cfg.ActionJump] = false
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionJump))
}
