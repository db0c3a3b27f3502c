package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PauseData stores the pause state and the overlay fade
type PauseData struct {
	IsPaused bool
	Fade     *gween.Tween
	Alpha    float32 // 0..1 overlay opacity
}

var Pause = donburi.NewComponentType[PauseData]()
