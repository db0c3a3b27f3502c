package gamemath

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestAttraction(t *testing.T) {
	tests := []struct {
		name   string
		pos    math.Vec2
		target math.Vec2
		want   math.Vec2
	}{
		{
			name:   "outside radius has no pull",
			pos:    math.Vec2{X: 0, Y: 0},
			target: math.Vec2{X: 301, Y: 0},
			want:   math.Vec2{},
		},
		{
			name:   "exactly on radius has no pull",
			pos:    math.Vec2{X: 0, Y: 0},
			target: math.Vec2{X: 300, Y: 0},
			want:   math.Vec2{},
		},
		{
			name:   "halfway pulls at half strength",
			pos:    math.Vec2{X: 0, Y: 0},
			target: math.Vec2{X: 0, Y: 150},
			want:   math.Vec2{X: 0, Y: 0.15},
		},
		{
			name:   "pull points toward target",
			pos:    math.Vec2{X: 100, Y: 100},
			target: math.Vec2{X: 40, Y: 100},
			want:   math.Vec2{X: -0.3 * 0.8, Y: 0},
		},
		{
			name:   "on top of target yields zero",
			pos:    math.Vec2{X: 5, Y: 5},
			target: math.Vec2{X: 5, Y: 5},
			want:   math.Vec2{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Attraction(tc.pos, tc.target, 300, 0.3)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}

func TestAttractionZeroRadius(t *testing.T) {
	got := Attraction(math.Vec2{}, math.Vec2{X: 1}, 0, 0.3)
	assert.Equal(t, math.Vec2{}, got)
}

func TestCapComponents(t *testing.T) {
	got := CapComponents(math.Vec2{X: 20, Y: -30}, math.Vec2{X: 10, Y: 16})
	assert.Equal(t, math.Vec2{X: 10, Y: -16}, got)

	// zero cap disables the axis
	got = CapComponents(math.Vec2{X: 20, Y: -30}, math.Vec2{X: 0, Y: 16})
	assert.Equal(t, math.Vec2{X: 20, Y: -16}, got)
}

func TestApplyFriction(t *testing.T) {
	got := ApplyFriction(math.Vec2{X: 10, Y: 4}, math.Vec2{X: 0.9, Y: 1})
	assert.InDelta(t, 9.0, got.X, 1e-9)
	assert.InDelta(t, 4.0, got.Y, 1e-9)
}

func TestFrictionTerminalSpeed(t *testing.T) {
	// Holding a direction converges on accel*f/(1-f) with multiplicative friction.
	v := math.Vec2{}
	for i := 0; i < 500; i++ {
		v.X += 1
		v = ApplyFriction(v, math.Vec2{X: 0.9, Y: 1})
	}
	assert.InDelta(t, 9.0, v.X, 1e-6)
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 5.0, ClampSpeed(7, 5))
	assert.Equal(t, -5.0, ClampSpeed(-7, 5))
	assert.Equal(t, 3.0, ClampSpeed(3, 5))
	assert.False(t, gomath.IsNaN(ClampSpeed(0, 0)))
}
