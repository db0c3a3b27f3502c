package factory

import (
	"image/color"

	"github.com/automoto/sketchbook/archetypes"
	"github.com/automoto/sketchbook/components"
	"github.com/automoto/sketchbook/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlock spawns a static solid. IDs follow registration order.
func CreateBlock(ecs *ecs.ECS, x, y, w, h float64, c color.RGBA) *donburi.Entry {
	id := 0
	tags.Block.Each(ecs.World, func(*donburi.Entry) { id++ })

	block := archetypes.Block.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid, tags.ResolvBlock)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = block // Link for O(1) lookup

	components.Object.SetValue(block, components.ObjectData{Object: obj})
	components.Block.SetValue(block, components.BlockData{
		ID:    id,
		Color: c,
	})

	addToSpace(ecs, obj)
	return block
}

// CreateFloor spawns the invisible ground strip whose top edge is the
// world's ground line.
func CreateFloor(ecs *ecs.ECS, groundY, width, thickness float64) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)

	obj := resolv.NewObject(0, groundY, width, thickness, tags.ResolvSolid, tags.ResolvFloor)
	obj.SetShape(resolv.NewRectangle(0, 0, width, thickness))
	obj.Data = floor

	components.Object.SetValue(floor, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return floor
}
