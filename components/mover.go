package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MoverData is a point mass steered by an attractor.
type MoverData struct {
	Position     math.Vec2
	Velocity     math.Vec2
	Acceleration math.Vec2
	Start        math.Vec2
}

var Mover = donburi.NewComponentType[MoverData]()

// TrailData keeps the most recent positions of a mover, oldest first.
type TrailData struct {
	Points []math.Vec2
	Length int // points kept before the oldest is dropped
}

// Push appends p, first dropping the oldest point once more than Length
// are held.
func (t *TrailData) Push(p math.Vec2) {
	if len(t.Points) > t.Length {
		copy(t.Points, t.Points[1:])
		t.Points = t.Points[:len(t.Points)-1]
	}
	t.Points = append(t.Points, p)
}

// Clear drops every point but keeps the backing array.
func (t *TrailData) Clear() {
	t.Points = t.Points[:0]
}

var Trail = donburi.NewComponentType[TrailData]()
