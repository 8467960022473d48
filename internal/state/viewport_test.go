package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SplineBoard/internal/spline"
)

func TestViewportToScreen(t *testing.T) {
	v := Viewport{Width: 800, Height: 800}

	tests := []struct {
		name string
		in   spline.Point
		want spline.Point
	}{
		{"centre", spline.Pt(0, 0), spline.Pt(399.5, 399.5)},
		{"top left", spline.Pt(-1, 1), spline.Pt(-0.5, -0.5)},
		{"bottom right", spline.Pt(1, -1), spline.Pt(799.5, 799.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ToScreen(tt.in)
			assert.InDelta(t, float64(tt.want.X), float64(got.X), 1e-5)
			assert.InDelta(t, float64(tt.want.Y), float64(got.Y), 1e-5)
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Width: 800, Height: 600}

	for _, p := range []spline.Point{
		spline.Pt(0, 0),
		spline.Pt(-1, 1),
		spline.Pt(0.25, -0.75),
		spline.Pt(-0.333, 0.667),
	} {
		back := v.FromScreen(v.ToScreen(p))
		assert.InDelta(t, float64(p.X), float64(back.X), 1e-5, "%v", p)
		assert.InDelta(t, float64(p.Y), float64(back.Y), 1e-5, "%v", p)
	}
}

func TestViewportYAxisFlips(t *testing.T) {
	v := Viewport{Width: 400, Height: 400}

	up := v.ToScreen(spline.Pt(0, 0.5))
	down := v.ToScreen(spline.Pt(0, -0.5))
	assert.Less(t, up.Y, down.Y, "normalized +Y must map to a smaller pixel row")
}
