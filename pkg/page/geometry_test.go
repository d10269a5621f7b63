package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "interior", x: 50, y: 40, want: true},
		{name: "top-left edge inclusive", x: 10, y: 20, want: true},
		{name: "right edge exclusive", x: 110, y: 40, want: false},
		{name: "bottom edge exclusive", x: 50, y: 70, want: false},
		{name: "just inside right", x: 109.999, y: 40, want: true},
		{name: "left of rect", x: 9, y: 40, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	overlap, ok := a.Intersect(Rect{X: 50, Y: 50, Width: 100, Height: 100})
	assert.True(t, ok)
	assert.Equal(t, Rect{X: 50, Y: 50, Width: 50, Height: 50}, overlap)

	_, ok = a.Intersect(Rect{X: 200, Y: 200, Width: 10, Height: 10})
	assert.False(t, ok)

	// Rectangles sharing only an edge do not overlap.
	_, ok = a.Intersect(Rect{X: 100, Y: 0, Width: 10, Height: 10})
	assert.False(t, ok)
}

func TestRectCenter(t *testing.T) {
	x, y := Rect{X: 100, Y: 50, Width: 200, Height: 101}.Center()
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 100.5, y)
}

func TestViewportInBounds(t *testing.T) {
	v := Viewport{Width: 800, Height: 600}

	assert.True(t, v.InBounds(0, 0))
	assert.True(t, v.InBounds(800, 600), "exact boundary is in bounds")
	assert.True(t, v.InBounds(5.75, 10.25))
	assert.False(t, v.InBounds(-0.5, 10))
	assert.False(t, v.InBounds(10, 600.001))
}
