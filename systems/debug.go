package systems

import (
	"fmt"

	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/fonts"
	"github.com/automoto/sketchbook/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const debugLineHeight = 14

// DrawDebug outlines every collision object and lists where the player
// sits relative to each block.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowDebug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Debug.OutlineColor
			if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.Debug.PlayerColor
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	face := fonts.Small.Get()

	x := screen.Bounds().Dx() - 150
	y := debugLineHeight
	lines := []string{
		fmt.Sprintf("speed %.2f, %.2f", physics.Speed.X, physics.Speed.Y),
		fmt.Sprintf("grounded %t  jumps %d", physics.OnGround != nil, player.Jumps),
	}
	for i, side := range player.RelativeSides {
		lines = append(lines, fmt.Sprintf("block %d: %s", i, side))
	}
	for _, line := range lines {
		text.Draw(screen, line, face, x, y, cfg.Debug.TextColor)
		y += debugLineHeight
	}
}

// DrawAttractionDebug prints the mover's kinematics.
func DrawAttractionDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowDebug {
		return
	}
	face := fonts.Small.Get()
	x := screen.Bounds().Dx() - 200
	y := debugLineHeight
	tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Mover.Get(e)
		trail := components.Trail.Get(e)
		lines := []string{
			fmt.Sprintf("pos %.1f, %.1f", m.Position.X, m.Position.Y),
			fmt.Sprintf("vel %.2f, %.2f", m.Velocity.X, m.Velocity.Y),
			fmt.Sprintf("acc %.3f, %.3f", m.Acceleration.X, m.Acceleration.Y),
			fmt.Sprintf("trail %d", len(trail.Points)),
		}
		for _, line := range lines {
			text.Draw(screen, line, face, x, y, cfg.Attraction.StrokeColor)
			y += debugLineHeight
		}
	})
}
