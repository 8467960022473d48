package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalCtrl = []Point{
	{X: -0.8, Y: -0.5},
	{X: -0.2, Y: 0.6},
	{X: 0.3, Y: -0.4},
	{X: 0.7, Y: 0.5},
}

func TestEvalDomainStartHitsFirstPoint(t *testing.T) {
	m := len(evalCtrl) - 1
	for k := 2; k <= len(evalCtrl); k++ {
		U := StandardKnots(k, m)
		lo, _ := U.Domain(k, m)

		p, ok := EvalPoint(evalCtrl, U, k, m, lo)
		require.True(t, ok, "k=%d", k)
		assert.InDelta(t, float64(evalCtrl[0].X), float64(p.X), 1e-5, "k=%d", k)
		assert.InDelta(t, float64(evalCtrl[0].Y), float64(p.Y), 1e-5, "k=%d", k)
	}
}

func TestEvalOrderTwoIsLinearInterpolation(t *testing.T) {
	a := Pt(-1, -0.5)
	b := Pt(1, 0.5)
	ctrl := []Point{a, b}
	U := StandardKnots(2, 1)

	for _, u := range []float32{0, 0.125, 0.25, 0.5, 0.75, 0.9375} {
		p, ok := EvalPoint(ctrl, U, 2, 1, u)
		require.True(t, ok, "u=%g", u)
		want := a.Scale(1 - u).Add(b.Scale(u))
		assert.InDelta(t, float64(want.X), float64(p.X), 1e-6, "u=%g", u)
		assert.InDelta(t, float64(want.Y), float64(p.Y), 1e-6, "u=%g", u)
	}
}

func TestEvalApproachesLastPoint(t *testing.T) {
	m := len(evalCtrl) - 1
	for k := 2; k <= len(evalCtrl); k++ {
		U := StandardKnots(k, m)
		last := evalCtrl[m]

		p, ok := EvalPoint(evalCtrl, U, k, m, 0.9999)
		require.True(t, ok, "k=%d", k)
		assert.InDelta(t, float64(last.X), float64(p.X), 1e-2, "k=%d", k)
		assert.InDelta(t, float64(last.Y), float64(p.Y), 1e-2, "k=%d", k)
	}
}

func TestEvalStaysInControlHullBox(t *testing.T) {
	m := len(evalCtrl) - 1
	minX, maxX := float32(-0.8), float32(0.7)
	minY, maxY := float32(-0.5), float32(0.6)

	for k := 2; k <= len(evalCtrl); k++ {
		U := StandardKnots(k, m)
		lo, hi := U.Domain(k, m)
		for u := lo; u < hi; u += 1.0 / 64 {
			p, ok := EvalPoint(evalCtrl, U, k, m, u)
			require.True(t, ok, "k=%d u=%g", k, u)
			require.False(t, p.IsNaN(), "k=%d u=%g", k, u)
			assert.GreaterOrEqual(t, p.X, minX, "k=%d u=%g", k, u)
			assert.LessOrEqual(t, p.X, maxX, "k=%d u=%g", k, u)
			assert.GreaterOrEqual(t, p.Y, minY, "k=%d u=%g", k, u)
			assert.LessOrEqual(t, p.Y, maxY, "k=%d u=%g", k, u)
		}
	}
}

func TestEvalOutsideDomain(t *testing.T) {
	U := StandardKnots(2, 1)
	_, ok := EvalPoint(evalCtrl[:2], U, 2, 1, 1)
	assert.False(t, ok)
}
