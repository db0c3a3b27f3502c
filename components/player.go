package components

import (
	"github.com/automoto/sketchbook/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Spawn        math.Vec2 // top-left spawn position
	InitialSpeed math.Vec2
	Jumps        int
	// Where the player sits relative to each block, indexed by block ID.
	RelativeSides []gamemath.Side
}

var Player = donburi.NewComponentType[PlayerData]()
