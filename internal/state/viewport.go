package state

import (
	"SplineBoard/internal/spline"
)

// Viewport converts between the normalized [-1,1] editor space (Y up) and
// widget pixel space (Y down). Both directions carry the same half-pixel
// centre offset, so FromScreen(ToScreen(p)) == p and hit tests agree with
// point placement to the pixel.
type Viewport struct {
	Width  float32
	Height float32
}

// ToScreen maps a normalized-space point to pixel coordinates.
func (v Viewport) ToScreen(p spline.Point) spline.Point {
	return spline.Point{
		X: (p.X+1)/2*v.Width - 0.5,
		Y: (1-(p.Y+1)/2)*v.Height - 0.5,
	}
}

// FromScreen maps pixel coordinates to a normalized-space point.
func (v Viewport) FromScreen(s spline.Point) spline.Point {
	return spline.Point{
		X: (s.X+0.5)/v.Width*2 - 1,
		Y: (1-(s.Y+0.5)/v.Height)*2 - 1,
	}
}
