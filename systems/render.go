package systems

import (
	"image/color"

	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer fills every player box.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.Platformer.PlayerColor, false)
	})
}

// DrawAttractionBackground clears the sketch canvas.
func DrawAttractionBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Attraction.BackgroundColor)
}

// DrawTrails strokes each mover's trail as a polyline, oldest point first.
func DrawTrails(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(cfg.Attraction.StrokeWidth)
	tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
		points := components.Trail.Get(e).Points
		for i := 1; i < len(points); i++ {
			a, b := points[i-1], points[i]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
				width, cfg.Attraction.StrokeColor, true)
		}
	})
}

// DrawField shades the attractor's area of influence.
func DrawField(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Attractor.First(ecs.World)
	if !ok || !getOrCreateInput(ecs).PointerActive {
		return
	}
	attractor := components.Attractor.Get(entry)
	// Configured colours carry straight alpha.
	fill := color.NRGBA(cfg.Attraction.FieldColor)
	vector.FillCircle(screen, float32(attractor.Position.X), float32(attractor.Position.Y),
		float32(attractor.Radius), fill, true)
}

// DrawMovers draws each mover as an outlined disc.
func DrawMovers(ecs *ecs.ECS, screen *ebiten.Image) {
	r := float32(cfg.Attraction.MoverDiameter / 2)
	tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Mover.Get(e).Position
		drawOutlinedDisc(screen, float32(p.X), float32(p.Y), r, cfg.Attraction.MoverColor)
	})
}

// DrawPointer marks the attractor position.
func DrawPointer(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Attractor.First(ecs.World)
	if !ok || !getOrCreateInput(ecs).PointerActive {
		return
	}
	p := components.Attractor.Get(entry).Position
	drawOutlinedDisc(screen, float32(p.X), float32(p.Y), float32(cfg.Attraction.PointerDiameter/2), cfg.Attraction.PointerColor)
}

func drawOutlinedDisc(screen *ebiten.Image, x, y, r float32, fill color.RGBA) {
	vector.FillCircle(screen, x, y, r, fill, true)
	vector.StrokeCircle(screen, x, y, r, float32(cfg.Attraction.StrokeWidth), cfg.Attraction.StrokeColor, true)
}
