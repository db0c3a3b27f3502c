package factory

import (
	"github.com/automoto/sketchbook/archetypes"
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player with its top-left corner at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	w, h := cfg.Platformer.PlayerWidth, cfg.Platformer.PlayerHeight

	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	initialSpeed := math.Vec2{X: cfg.Platformer.InitialSpeedX, Y: cfg.Platformer.InitialSpeedY}
	components.Player.SetValue(player, components.PlayerData{
		Spawn:        math.Vec2{X: x, Y: y},
		InitialSpeed: initialSpeed,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Speed:    initialSpeed,
		Gravity:  cfg.Platformer.Gravity,
		Friction: math.Vec2{X: cfg.Platformer.FrictionX, Y: cfg.Platformer.FrictionY},
		MaxSpeed: math.Vec2{X: cfg.Platformer.MaxSpeedX, Y: cfg.Platformer.MaxSpeedY},
	})

	addToSpace(ecs, obj)
	return player
}
