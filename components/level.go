package components

import (
	"github.com/automoto/sketchbook/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
}

var Level = donburi.NewComponentType[LevelData]()
