package gamemath

import "github.com/yohamta/donburi/features/math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// CapComponents clamps each axis of v independently to [-cap, cap].
// A non-positive cap on an axis leaves that axis untouched.
func CapComponents(v, cap math.Vec2) math.Vec2 {
	if cap.X > 0 {
		v.X = ClampSpeed(v.X, cap.X)
	}
	if cap.Y > 0 {
		v.Y = ClampSpeed(v.Y, cap.Y)
	}
	return v
}

// ApplyFriction scales speed per axis. A friction of (1, 1) is frictionless.
func ApplyFriction(speed, friction math.Vec2) math.Vec2 {
	return speed.Mul(friction)
}

// Attraction returns the acceleration pulling pos toward target.
// Outside radius the pull is zero; inside it falls off linearly from
// strength at the centre to nothing at the edge.
func Attraction(pos, target math.Vec2, radius, strength float64) math.Vec2 {
	if radius <= 0 {
		return math.Vec2{}
	}
	dir := target.Sub(pos)
	dist := dir.Magnitude()
	if dist > radius {
		return math.Vec2{}
	}
	closeness := 1 - MapRange(dist, 0, radius, 0, 1)
	return Normalize(dir).MulScalar(closeness * strength)
}
