package systems

import (
	"github.com/automoto/sketchbook/components"
	"github.com/automoto/sketchbook/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates one frame of gravity, constant forces, friction
// and the per-axis speed cap. Position is left to UpdateCollisions.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		stepPhysics(physics)
	})
}

func stepPhysics(physics *components.PhysicsData) {
	physics.Speed.Y += physics.Gravity
	for _, f := range physics.Forces {
		physics.Speed = physics.Speed.Add(f)
	}
	physics.Speed = gamemath.ApplyFriction(physics.Speed, physics.Friction)
	physics.Speed = gamemath.CapComponents(physics.Speed, physics.MaxSpeed)
}
