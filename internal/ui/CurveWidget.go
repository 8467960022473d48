package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SplineBoard/internal/spline"
	"SplineBoard/internal/state"
)

// pickThreshold is the hit-test radius around a control point, in pixels.
const pickThreshold = 6

// pointSize is the rendered diameter of a control point marker, in pixels.
const pointSize = float32(6)

// CurveWidget is the interactive canvas. Left click on empty space adds a
// control point, left click on a point grabs it for dragging, right click
// on a point deletes it. The curve itself is derived state owned by the
// document; the widget only translates mouse events into edits.
type CurveWidget struct {
	widget.BaseWidget
	doc *state.Document

	selected int
	dragging bool
}

var _ fyne.Widget = (*CurveWidget)(nil)
var _ fyne.Draggable = (*CurveWidget)(nil)
var _ desktop.Mouseable = (*CurveWidget)(nil)

func NewCurveWidget(doc *state.Document) *CurveWidget {
	w := &CurveWidget{doc: doc, selected: -1}
	w.ExtendBaseWidget(w)
	return w
}

func (w *CurveWidget) viewport() state.Viewport {
	size := w.Size()
	return state.Viewport{Width: size.Width, Height: size.Height}
}

func (w *CurveWidget) MouseDown(e *desktop.MouseEvent) {
	vp := w.viewport()
	cursor := spline.Pt(e.Position.X, e.Position.Y)
	w.selected = state.PickPoint(w.doc.Points(), cursor, vp, pickThreshold)

	switch e.Button {
	case desktop.MouseButtonPrimary:
		if w.selected < 0 {
			// Clicked empty space: place a new point there.
			w.doc.AddPoint(vp.FromScreen(cursor))
			return
		}
		w.dragging = true
	case desktop.MouseButtonSecondary:
		if w.selected >= 0 {
			w.doc.RemovePoint(w.selected)
			// Forget the selection so the next drag cannot move
			// whichever point slid into the freed slot.
			w.selected = -1
		}
	}
}

func (w *CurveWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.dragging = false
		w.selected = -1
	}
}

func (w *CurveWidget) Dragged(e *fyne.DragEvent) {
	if !w.dragging || w.selected < 0 {
		return
	}
	vp := w.viewport()
	w.doc.MovePoint(w.selected, vp.FromScreen(spline.Pt(e.Position.X, e.Position.Y)))
}

func (w *CurveWidget) DragEnd() {
	w.dragging = false
}

func (w *CurveWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *CurveWidget) MouseOut()                      {}
func (w *CurveWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *CurveWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &curveRenderer{widget: w}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type curveRenderer struct {
	widget     *CurveWidget
	background *canvas.Rectangle
}

func (r *curveRenderer) Objects() []fyne.CanvasObject {
	w := r.widget
	vp := w.viewport()
	params := w.doc.Params()
	objects := []fyne.CanvasObject{r.background}

	if params.ShowCurve {
		curve := w.doc.Curve()
		for i := 0; i+1 < len(curve.Points); i++ {
			segment := canvas.NewLine(curve.Colors[i])
			segment.StrokeWidth = 2
			p1 := vp.ToScreen(curve.Points[i])
			p2 := vp.ToScreen(curve.Points[i+1])
			segment.Position1 = fyne.NewPos(p1.X, p1.Y)
			segment.Position2 = fyne.NewPos(p2.X, p2.Y)
			objects = append(objects, segment)
		}
	}

	if params.ShowPoints {
		for _, cp := range w.doc.Points() {
			dot := canvas.NewCircle(cp.Color)
			s := vp.ToScreen(cp.Pos)
			dot.Resize(fyne.NewSize(pointSize, pointSize))
			dot.Move(fyne.NewPos(s.X-pointSize/2, s.Y-pointSize/2))
			objects = append(objects, dot)
		}
	}
	return objects
}

func (r *curveRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *curveRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *curveRenderer) Refresh() {
	canvas.Refresh(r.widget)
}

func (r *curveRenderer) Destroy() {}
