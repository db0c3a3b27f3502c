package systems

import (
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills the platformer background and draws every block.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Platformer.BackgroundColor)

	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		block := components.Block.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), block.Color, false)
	})
}
