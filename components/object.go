package components

import (
	"github.com/automoto/sketchbook/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds as a plain AABB.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetRect moves the object to r and refreshes its cell membership.
func (o ObjectData) SetRect(r gamemath.Rect) {
	o.X, o.Y = r.X, r.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
