package state

import (
	"SplineBoard/internal/spline"
)

// PickPoint returns the index of the first control point whose screen
// position lies strictly within threshold pixels of the cursor, or -1 when
// none does. Lowest index wins; there is no nearest-of-all tie-breaking.
// The cursor is given in pixel coordinates, the points in normalized space.
func PickPoint(points []ControlPoint, cursor spline.Point, v Viewport, threshold float32) int {
	for i, cp := range points {
		if v.ToScreen(cp.Pos).Distance(cursor) < threshold {
			return i
		}
	}
	return -1
}
