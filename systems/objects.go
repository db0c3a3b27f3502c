package systems

import (
	"github.com/automoto/sketchbook/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-syncs every collision object with its space cells.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	})
}
