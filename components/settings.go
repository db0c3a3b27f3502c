package components

import "github.com/yohamta/donburi"

// SettingsData holds per-scene toggles that outlive a single frame.
type SettingsData struct {
	ShowDebug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
