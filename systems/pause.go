package systems

import (
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/fonts"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and advances the overlay fade.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(pause, !pause.IsPaused)
		log.Debug("pause toggled", "paused", pause.IsPaused)
	}

	stepPauseFade(pause, frameSeconds())
}

// SetPaused changes the pause state. Pausing restarts the overlay fade.
func SetPaused(pause *components.PauseData, paused bool) {
	pause.IsPaused = paused
	if !paused {
		pause.Fade = nil
		pause.Alpha = 0
		return
	}
	pause.Alpha = 0
	pause.Fade = gween.New(0, 1, cfg.Pause.FadeSeconds, ease.OutQuad)
}

func stepPauseFade(pause *components.PauseData, dt float32) {
	if !pause.IsPaused || pause.Fade == nil {
		return
	}
	alpha, done := pause.Fade.Update(dt)
	pause.Alpha = alpha
	if done {
		pause.Alpha = 1
		pause.Fade = nil
	}
}

// frameSeconds is the duration of one tick at the configured TPS.
func frameSeconds() float32 {
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float32(tps)
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	overlay := cfg.Pause.OverlayColor
	overlay.A = uint8(float32(overlay.A) * pause.Alpha)
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		overlay,
		false,
	)

	if pause.Alpha < 1 {
		return
	}

	title := "PAUSED"
	fontFace := fonts.Title.Get()
	titleWidth := text.BoundString(fontFace, title).Dx()
	text.Draw(screen, title, fontFace, int(width-float64(titleWidth))/2, int(height*cfg.Pause.TitleY), cfg.Pause.TextColor)

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := text.BoundString(hintFont, hint).Dx()
	text.Draw(screen, hint, hintFont, int(width-float64(hintWidth))/2, int(height)-12, cfg.Pause.HintColor)
}

// getPauseHint returns the appropriate hint for the pause overlay
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume   Share: Menu"
	case components.InputXbox:
		return "Start: Resume   Back: Menu"
	}
	return "P: Resume   Esc: Menu"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
