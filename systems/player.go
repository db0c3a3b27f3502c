package systems

import (
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/gamemath"
	"github.com/automoto/sketchbook/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the action state into player speed.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		if GetAction(input, cfg.ActionReset).JustPressed {
			respawnPlayer(player, physics, components.Object.Get(e))
			return
		}

		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			physics.Speed.X -= cfg.Platformer.MoveAccel
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			physics.Speed.X += cfg.Platformer.MoveAccel
		}

		// Held jump fires again as soon as the player lands.
		if GetAction(input, cfg.ActionJump).Pressed && physics.OnGround != nil {
			jump(player, physics)
		}
	})
}

func jump(player *components.PlayerData, physics *components.PhysicsData) {
	physics.Speed.Y -= cfg.Platformer.JumpSpeed
	physics.OnGround = nil
	player.Jumps++

	log.Debug("jump", "count", player.Jumps, "sides", sideNames(player.RelativeSides))
}

func respawnPlayer(player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	box := obj.Rect()
	box.X, box.Y = player.Spawn.X, player.Spawn.Y
	obj.SetRect(box)

	physics.Speed = player.InitialSpeed
	physics.OnGround = nil
	player.RelativeSides = player.RelativeSides[:0]

	log.Debug("player reset", "x", box.X, "y", box.Y)
}

func sideNames(sides []gamemath.Side) []string {
	names := make([]string, len(sides))
	for i, s := range sides {
		names[i] = s.String()
	}
	return names
}
