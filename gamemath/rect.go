package gamemath

// contactEpsilon absorbs float drift after an object is pushed flush
// against a solid, so resting contact never reads as penetration.
const contactEpsilon = 1e-6

// Rect is an axis-aligned box with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o penetrate each other. Shared edges do
// not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right()-contactEpsilon && r.Right()-contactEpsilon > o.X &&
		r.Y < o.Bottom()-contactEpsilon && r.Bottom()-contactEpsilon > o.Y
}

// Touches reports whether r and o overlap or share an edge.
func (r Rect) Touches(o Rect) bool {
	return r.X <= o.Right()+contactEpsilon && r.Right()+contactEpsilon >= o.X &&
		r.Y <= o.Bottom()+contactEpsilon && r.Bottom()+contactEpsilon >= o.Y
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Side names a face of a box, or where one box sits relative to another.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
	SideInside
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideInside:
		return "inside"
	}
	return "none"
}

// Contact describes the solid an axis move was stopped by. Index is -1
// when nothing was hit.
type Contact struct {
	Side  Side
	Index int
}

// Hit reports whether the move was blocked.
func (c Contact) Hit() bool { return c.Index >= 0 }

var noContact = Contact{Side: SideNone, Index: -1}

// RelativeSide classifies where box lies relative to solid. When box is
// off a corner the horizontal side wins.
func RelativeSide(box, solid Rect) Side {
	switch {
	case box.X >= solid.Right()-contactEpsilon:
		return SideRight
	case box.Right() <= solid.X+contactEpsilon:
		return SideLeft
	case box.Bottom() <= solid.Y+contactEpsilon:
		return SideTop
	case box.Y >= solid.Bottom()-contactEpsilon:
		return SideBottom
	}
	return SideInside
}

// ResolveX moves box horizontally by dx and pushes it back out of any
// solid it ends up inside. Side is the face of box that made contact.
func ResolveX(box Rect, dx float64, solids []Rect) (Rect, Contact) {
	box.X += dx
	contact := noContact
	if dx == 0 {
		return box, contact
	}
	for i, s := range solids {
		if !box.Overlaps(s) {
			continue
		}
		if dx > 0 {
			box.X = s.X - box.W
			contact = Contact{Side: SideRight, Index: i}
		} else {
			box.X = s.Right()
			contact = Contact{Side: SideLeft, Index: i}
		}
	}
	return box, contact
}

// ResolveY moves box vertically by dy and pushes it back out of any solid
// it ends up inside. Landing reports SideBottom (the box's feet), a
// ceiling bump reports SideTop.
func ResolveY(box Rect, dy float64, solids []Rect) (Rect, Contact) {
	box.Y += dy
	contact := noContact
	if dy == 0 {
		return box, contact
	}
	for i, s := range solids {
		if !box.Overlaps(s) {
			continue
		}
		if dy > 0 {
			box.Y = s.Y - box.H
			contact = Contact{Side: SideBottom, Index: i}
		} else {
			box.Y = s.Bottom()
			contact = Contact{Side: SideTop, Index: i}
		}
	}
	return box, contact
}

// ClampX keeps box within [minX, maxX] horizontally. It reports whether
// the box had to be moved.
func ClampX(box Rect, minX, maxX float64) (Rect, bool) {
	switch {
	case box.X < minX:
		box.X = minX
		return box, true
	case box.Right() > maxX:
		box.X = maxX - box.W
		return box, true
	}
	return box, false
}
