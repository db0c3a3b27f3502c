package systems

import (
	"image/color"

	"github.com/automoto/sketchbook/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// NewDrawHints returns a renderer that prints control hints in the
// top-left corner.
func NewDrawHints(hint string, clr color.Color) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		face := fonts.Regular.Get()
		text.Draw(screen, hint, face, hudMargin, hudMargin+12, clr)
	}
}
