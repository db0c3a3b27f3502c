package factory

import (
	"github.com/automoto/sketchbook/archetypes"
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateMover spawns a mover at rest at (x, y) with an empty trail.
func CreateMover(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	mover := archetypes.Mover.Spawn(ecs)
	start := math.Vec2{X: x, Y: y}

	components.Mover.SetValue(mover, components.MoverData{
		Position: start,
		Start:    start,
	})
	length := cfg.Attraction.TrailLength
	components.Trail.SetValue(mover, components.TrailData{
		Points: make([]math.Vec2, 0, length+1),
		Length: length,
	})
	return mover
}

// CreateAttractor spawns the pointer-driven gravity well.
func CreateAttractor(ecs *ecs.ECS) *donburi.Entry {
	attractor := archetypes.Attractor.Spawn(ecs)
	components.Attractor.SetValue(attractor, components.AttractorData{
		Radius:   cfg.Attraction.FieldRadius,
		Strength: cfg.Attraction.Strength,
	})
	return attractor
}
