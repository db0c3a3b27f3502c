package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Speed    math.Vec2
	Forces   []math.Vec2 // constant forces added every frame
	Gravity  float64
	Friction math.Vec2 // per-axis multiplier, (1, 1) = none
	MaxSpeed math.Vec2 // per-axis cap, 0 = uncapped
	OnGround *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
