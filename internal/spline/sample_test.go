package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleTwoPointsIsStraightSegment(t *testing.T) {
	a := Pt(-0.5, -0.5)
	b := Pt(0.5, 0.5)
	ctrl := []Point{a, b}
	U := StandardKnots(2, 1)

	got := Sample(ctrl, U, 2, 1, 0.25)
	require.Len(t, got.Points, 4)
	for i, u := range []float32{0, 0.25, 0.5, 0.75} {
		want := a.Scale(1 - u).Add(b.Scale(u))
		assert.InDelta(t, float64(want.X), float64(got.Points[i].X), 1e-6, "sample %d", i)
		assert.InDelta(t, float64(want.Y), float64(got.Points[i].Y), 1e-6, "sample %d", i)
	}
}

func TestSampleColorsMatchPoints(t *testing.T) {
	got := Sample(evalCtrl, StandardKnots(3, 3), 3, 3, 0.1)
	require.Equal(t, len(got.Points), len(got.Colors))
	for _, c := range got.Colors {
		assert.Equal(t, CurveColor, c)
	}
}

func TestSampleStepWiderThanDomain(t *testing.T) {
	got := Sample(evalCtrl[:2], StandardKnots(2, 1), 2, 1, 2)
	assert.Len(t, got.Points, 1)
}

func TestSampleRejectsNonPositiveStep(t *testing.T) {
	got := Sample(evalCtrl[:2], StandardKnots(2, 1), 2, 1, 0)
	assert.Empty(t, got.Points)
}

func TestCurveNeedsTwoPoints(t *testing.T) {
	assert.Empty(t, Curve(nil, 2, 0.1).Points)
	assert.Empty(t, Curve(evalCtrl[:1], 2, 0.1).Points)
}

func TestCurveClampsOrderToPointCount(t *testing.T) {
	// Asking for a higher order than the points can support must degrade
	// to a lower-order curve, not emit garbage.
	got := Curve(evalCtrl[:3], 7, 0.05)
	require.NotEmpty(t, got.Points)
	for i, p := range got.Points {
		assert.False(t, p.IsNaN(), "sample %d", i)
	}
}

func TestCurveThirdPointShiftsInteriorSamples(t *testing.T) {
	two := Curve(evalCtrl[:2], 2, 0.25)
	three := Curve(evalCtrl[:3], 2, 0.25)
	require.Len(t, two.Points, 4)
	require.Len(t, three.Points, 4)

	// The knot sequence is rebuilt from scratch, so the interior samples
	// move even though the first sample still sits on the first point.
	assert.Equal(t, two.Points[0], three.Points[0])
	assert.NotEqual(t, two.Points[2], three.Points[2])
}
