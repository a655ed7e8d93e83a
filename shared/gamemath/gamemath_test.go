package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlapEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name      string
		b         Rect
		inclusive bool
		strict    bool
	}{
		{"inside", Rect{2, 2, 4, 4}, true, true},
		{"touching right edge", Rect{10, 0, 5, 5}, true, false},
		{"touching bottom edge", Rect{0, 10, 5, 5}, true, false},
		{"touching corner", Rect{10, 10, 5, 5}, true, false},
		{"apart", Rect{11, 0, 5, 5}, false, false},
		{"partial", Rect{8, 8, 5, 5}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inclusive, a.Overlaps(tt.b))
			assert.Equal(t, tt.inclusive, tt.b.Overlaps(a))
			assert.Equal(t, tt.strict, a.OverlapsStrict(tt.b))
			assert.Equal(t, tt.strict, tt.b.OverlapsStrict(a))
		})
	}
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 5.0, ClampSpeed(9, 5))
	assert.Equal(t, -5.0, ClampSpeed(-9, 5))
	assert.Equal(t, 3.0, ClampSpeed(3, 5))
}

func TestWrapDegrees(t *testing.T) {
	assert.InDelta(t, 10.0, WrapDegrees(370), 1e-9)
	assert.InDelta(t, 350.0, WrapDegrees(-10), 1e-9)
	assert.InDelta(t, 0.0, WrapDegrees(360), 1e-9)
}
