package spline

import (
	"github.com/chewxy/math32"
)

// Point is a 2D position in the editor's normalized coordinate space.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float32) Point {
	return Point{X: s * p.X, Y: s * p.Y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float32 {
	return math32.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsNaN reports whether either coordinate is NaN.
func (p Point) IsNaN() bool {
	return math32.IsNaN(p.X) || math32.IsNaN(p.Y)
}
