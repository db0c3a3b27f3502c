package systems

import (
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/gamemath"
	"github.com/automoto/sketchbook/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateAttractor moves the attractor to the pointer.
// Must run AFTER UpdateInput.
func UpdateAttractor(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !input.PointerActive {
		return
	}
	tags.Attractor.Each(ecs.World, func(e *donburi.Entry) {
		attractor := components.Attractor.Get(e)
		attractor.Position = math.Vec2{X: input.PointerX, Y: input.PointerY}
	})
}

// NewUpdateMovers returns the mover integration system. bounds reports the
// current canvas size, used by the wrap edge mode.
func NewUpdateMovers(bounds func() (w, h float64)) ecs.System {
	return func(ecs *ecs.ECS) {
		attractorEntry, ok := tags.Attractor.First(ecs.World)
		if !ok {
			return
		}
		attractor := components.Attractor.Get(attractorEntry)

		tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
			mover := components.Mover.Get(e)
			stepMover(mover, attractor)
			if cfg.Attraction.EdgeMode == cfg.EdgeWrap {
				w, h := bounds()
				mover.Position = gamemath.Wrap(mover.Position, w, h)
			}
			components.Trail.Get(e).Push(mover.Position)
		})
	}
}

func stepMover(mover *components.MoverData, attractor *components.AttractorData) {
	mover.Acceleration = gamemath.Attraction(mover.Position, attractor.Position, attractor.Radius, attractor.Strength)
	mover.Velocity = gamemath.Limit(mover.Velocity.Add(mover.Acceleration), cfg.Attraction.EffectiveMaxSpeed())
	mover.Position = mover.Position.Add(mover.Velocity)
}

// UpdateMoverReset puts every mover back at its start, at rest, with an
// empty trail.
func UpdateMoverReset(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionReset).JustPressed {
		return
	}
	tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
		resetMover(components.Mover.Get(e), components.Trail.Get(e))
	})
	log.Debug("movers reset")
}

func resetMover(mover *components.MoverData, trail *components.TrailData) {
	mover.Position = mover.Start
	mover.Velocity = math.Vec2{}
	mover.Acceleration = math.Vec2{}
	trail.Clear()
}
