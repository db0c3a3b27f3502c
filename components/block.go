package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type BlockData struct {
	ID    int // registration order, starting at 0
	Color color.RGBA
}

var Block = donburi.NewComponentType[BlockData]()
