package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestMapRange(t *testing.T) {
	assert.InDelta(t, 0.5, MapRange(150, 0, 300, 0, 1), 1e-9)
	assert.InDelta(t, 0.0, MapRange(0, 0, 300, 0, 1), 1e-9)
	// not clamped
	assert.InDelta(t, 2.0, MapRange(600, 0, 300, 0, 1), 1e-9)
	// degenerate input range
	assert.Equal(t, 3.0, MapRange(10, 1, 1, 3, 4))
}

func TestNormalize(t *testing.T) {
	n := Normalize(math.Vec2{X: 3, Y: 4})
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.Equal(t, math.Vec2{}, Normalize(math.Vec2{}))
}

func TestLimit(t *testing.T) {
	v := Limit(math.Vec2{X: 60, Y: 80}, 30)
	assert.InDelta(t, 30.0, v.Magnitude(), 1e-9)
	assert.InDelta(t, 18.0, v.X, 1e-9)
	assert.InDelta(t, 24.0, v.Y, 1e-9)

	short := math.Vec2{X: 1, Y: 1}
	assert.Equal(t, short, Limit(short, 30))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   math.Vec2
		want math.Vec2
	}{
		{"inside", math.Vec2{X: 10, Y: 20}, math.Vec2{X: 10, Y: 20}},
		{"past right", math.Vec2{X: 105, Y: 20}, math.Vec2{X: 5, Y: 20}},
		{"past left", math.Vec2{X: -5, Y: 20}, math.Vec2{X: 95, Y: 20}},
		{"past bottom", math.Vec2{X: 10, Y: 130}, math.Vec2{X: 10, Y: 30}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.in, 100, 100)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}
