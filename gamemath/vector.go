package gamemath

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// MapRange re-maps v from [inMin, inMax] to [outMin, outMax]. The result
// is not clamped, so values outside the input range extrapolate.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func Normalize(v math.Vec2) math.Vec2 {
	if v.X == 0 && v.Y == 0 {
		return math.Vec2{}
	}
	return v.Normalized()
}

// Limit shortens v to max if it is longer.
func Limit(v math.Vec2, max float64) math.Vec2 {
	m := v.Magnitude()
	if m <= max || m == 0 {
		return v
	}
	return v.MulScalar(max / m)
}

// Wrap folds a position back into [0, w) x [0, h).
func Wrap(v math.Vec2, w, h float64) math.Vec2 {
	return math.Vec2{X: wrapAxis(v.X, w), Y: wrapAxis(v.Y, h)}
}

func wrapAxis(x, size float64) float64 {
	if size <= 0 {
		return x
	}
	x = gomath.Mod(x, size)
	if x < 0 {
		x += size
	}
	return x
}
