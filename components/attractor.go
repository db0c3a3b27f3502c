package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AttractorData is the pointer-driven gravity well.
type AttractorData struct {
	Position math.Vec2
	Radius   float64
	Strength float64
}

var Attractor = donburi.NewComponentType[AttractorData]()
