package systems

import (
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component. A new one
// starts from the debug flag and any saved preference.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		showDebug := cfg.Debug.ShowCollisions
		if saved, _ := LoadSettings(); saved != nil && saved.ShowDebug {
			showDebug = true
		}
		components.Settings.SetValue(ent, components.SettingsData{ShowDebug: showDebug})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// UpdateDebugToggle flips the debug overlay and remembers the choice.
func UpdateDebugToggle(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionToggleDebug).JustPressed {
		return
	}

	settings := GetOrCreateSettings(ecs)
	settings.ShowDebug = !settings.ShowDebug
	log.Debug("debug overlay toggled", "enabled", settings.ShowDebug)

	show := settings.ShowDebug
	UpdateSavedSettings(func(s *SavedSettings) {
		s.ShowDebug = show
	})
}

// UpdateFullscreenToggle switches fullscreen on F11 and remembers it.
func UpdateFullscreenToggle(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		return
	}

	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	UpdateSavedSettings(func(s *SavedSettings) {
		s.Fullscreen = fullscreen
	})
}
