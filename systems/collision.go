package systems

import (
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/gamemath"
	"github.com/automoto/sketchbook/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every player by its speed, horizontally first,
// and stops it at solids. Resolv finds the candidates, gamemath resolves
// the penetration.
func UpdateCollisions(ecs *ecs.ECS) {
	width, clamp := worldWidth(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj)
		if clamp {
			clampToWorld(physics, obj, width)
		}
		resolveVerticalCollision(physics, obj)

		player := components.Player.Get(e)
		updateRelativeSides(ecs, player, obj.Rect())
	})
}

// resolveHorizontalCollision moves the object by SpeedX and zeroes the
// speed when a solid is hit.
func resolveHorizontalCollision(physics *components.PhysicsData, obj *components.ObjectData) {
	dx := physics.Speed.X
	if dx == 0 {
		return
	}

	solids := nearbySolids(obj.Object, dx, 0)
	box, contact := gamemath.ResolveX(obj.Rect(), dx, rects(solids))
	obj.SetRect(box)

	if contact.Hit() {
		physics.Speed.X = 0
	}
}

// resolveVerticalCollision moves the object by SpeedY. Landing on a solid
// grounds the object, hitting a ceiling stops the rise.
func resolveVerticalCollision(physics *components.PhysicsData, obj *components.ObjectData) {
	physics.OnGround = nil
	dy := physics.Speed.Y
	if dy == 0 {
		return
	}

	solids := nearbySolids(obj.Object, 0, dy)
	box, contact := gamemath.ResolveY(obj.Rect(), dy, rects(solids))
	obj.SetRect(box)

	if !contact.Hit() {
		return
	}
	physics.Speed.Y = 0
	if contact.Side == gamemath.SideBottom {
		physics.OnGround = solids[contact.Index]
	}
}

// clampToWorld keeps the object inside [0, width] and stops it at the edge.
func clampToWorld(physics *components.PhysicsData, obj *components.ObjectData, width float64) {
	box, clamped := gamemath.ClampX(obj.Rect(), 0, width)
	if !clamped {
		return
	}
	obj.SetRect(box)
	physics.Speed.X = 0
}

// nearbySolids returns the solids sharing a cell with the object once it
// is moved by (dx, dy). A second probe one pixel further catches boxes
// whose far edge ends just short of a cell boundary.
func nearbySolids(object *resolv.Object, dx, dy float64) []*resolv.Object {
	if object.Space == nil {
		return nil
	}

	var solids []*resolv.Object
	seen := map[*resolv.Object]bool{}
	for _, probe := range [2][2]float64{{dx, dy}, {dx + probeStep(dx), dy + probeStep(dy)}} {
		check := object.Check(probe[0], probe[1], tags.ResolvSolid)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
			if !seen[o] {
				seen[o] = true
				solids = append(solids, o)
			}
		}
	}
	return solids
}

func probeStep(d float64) float64 {
	if d < 0 {
		return -1
	}
	return 1
}

func rects(objs []*resolv.Object) []gamemath.Rect {
	out := make([]gamemath.Rect, len(objs))
	for i, o := range objs {
		out[i] = gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
	}
	return out
}

// updateRelativeSides records where box sits relative to every block,
// indexed by block ID.
func updateRelativeSides(ecs *ecs.ECS, player *components.PlayerData, box gamemath.Rect) {
	player.RelativeSides = player.RelativeSides[:0]
	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		block := components.Block.Get(e)
		for len(player.RelativeSides) <= block.ID {
			player.RelativeSides = append(player.RelativeSides, gamemath.SideNone)
		}
		player.RelativeSides[block.ID] = gamemath.RelativeSide(box, components.Object.Get(e).Rect())
	})
}

// worldWidth returns the level width and whether horizontal clamping is on.
func worldWidth(ecs *ecs.ECS) (float64, bool) {
	if !cfg.Platformer.ClampHorizontal {
		return 0, false
	}
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0, false
	}
	level := components.Level.Get(entry)
	if level.CurrentLevel == nil {
		return 0, false
	}
	return float64(level.CurrentLevel.Width), true
}
