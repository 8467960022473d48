package spline

import (
	"image/color"
)

// CurveColor is the display color of every sampled curve vertex.
var CurveColor = color.NRGBA{R: 255, G: 191, B: 51, A: 255}

// SampledCurve is the polyline produced by sampling the curve, with a
// display color per vertex. It is derived state, rebuilt on every edit.
type SampledCurve struct {
	Points []Point
	Colors []color.NRGBA
}

// Sample evaluates the curve at u = U[k-1], stepping by uInc while
// u < U[m+1], and returns the resulting polyline. A domain narrower than
// uInc yields a single sample and an empty domain yields none; neither is
// an error.
func Sample(ctrl []Point, U Knots, k, m int, uInc float32) SampledCurve {
	var out SampledCurve
	if uInc <= 0 {
		return out
	}
	lo, hi := U.Domain(k, m)
	for u := lo; u < hi; u += uInc {
		p, ok := EvalPoint(ctrl, U, k, m, u)
		if !ok {
			continue
		}
		out.Points = append(out.Points, p)
		out.Colors = append(out.Colors, CurveColor)
	}
	return out
}

// Curve rebuilds the knot sequence for the given control points and
// samples the whole curve. The order is clamped to the point count so an
// under-supplied point list degrades to a lower-order curve instead of
// producing garbage knots. Fewer than two points yield an empty curve.
func Curve(ctrl []Point, k int, uInc float32) SampledCurve {
	if len(ctrl) < 2 {
		return SampledCurve{}
	}
	if k < 2 {
		k = 2
	}
	if k > len(ctrl) {
		k = len(ctrl)
	}
	m := len(ctrl) - 1
	U := StandardKnots(k, m)
	return Sample(ctrl, U, k, m, uInc)
}
