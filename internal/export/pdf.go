package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"SplineBoard/internal/spline"
	"SplineBoard/internal/state"
)

// Page geometry in millimetres: the normalized [-1,1] square is mapped
// onto a 180mm box centred on an A4 portrait page.
const (
	boxSize = 180.0
	marginX = 15.0
	marginY = 58.5
)

func toPage(p spline.Point) (float64, float64) {
	x := (float64(p.X)+1)/2*boxSize + marginX
	y := (1-(float64(p.Y)+1)/2)*boxSize + marginY
	return x, y
}

// Write renders a snapshot of the editor to a single-page PDF: the control
// polygon in light grey, the sampled curve on top, then the point markers.
// The curve is resampled here rather than passed in, so the export always
// matches the snapshot's parameters.
func Write(w io.Writer, snap state.Snapshot) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	positions := make([]spline.Point, len(snap.Points))
	for i, cp := range snap.Points {
		positions[i] = cp.Pos
	}

	p.SetDrawColor(200, 200, 200)
	p.SetLineWidth(0.2)
	for i := 1; i < len(positions); i++ {
		x1, y1 := toPage(positions[i-1])
		x2, y2 := toPage(positions[i])
		p.Line(x1, y1, x2, y2)
	}

	curve := spline.Curve(positions, snap.Params.Degree, snap.Params.Step)
	p.SetDrawColor(255, 191, 51)
	p.SetLineWidth(0.8)
	for i := 1; i < len(curve.Points); i++ {
		x1, y1 := toPage(curve.Points[i-1])
		x2, y2 := toPage(curve.Points[i])
		p.Line(x1, y1, x2, y2)
	}

	p.SetFillColor(0, 200, 0)
	for _, pos := range positions {
		x, y := toPage(pos)
		p.Circle(x, y, 1.2, "F")
	}

	return p.Output(w)
}
