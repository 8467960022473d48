package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"SplineBoard/internal/export"
	"SplineBoard/internal/state"
)

// NewToolbar builds the parameter row above the canvas: order and step
// sliders, the display toggles, clear and PDF export.
func NewToolbar(doc *state.Document, win fyne.Window) fyne.CanvasObject {
	params := doc.Params()

	degreeSlider := widget.NewSlider(state.MinDegree, state.MaxDegree)
	degreeSlider.Step = 1
	degreeSlider.SetValue(float64(params.Degree))
	degreeSlider.OnChanged = func(v float64) {
		doc.SetDegree(int(v))
	}

	stepSlider := widget.NewSlider(float64(state.MinStep), float64(state.MaxStep))
	stepSlider.Step = 0.001
	stepSlider.SetValue(float64(params.Step))
	stepSlider.OnChanged = func(v float64) {
		doc.SetStep(float32(v))
	}

	pointsCheck := widget.NewCheck("Control pts", doc.SetShowPoints)
	pointsCheck.SetChecked(params.ShowPoints)
	curveCheck := widget.NewCheck("Curve", doc.SetShowCurve)
	curveCheck.SetChecked(params.ShowCurve)

	clearButton := widget.NewButton("Clear", doc.Clear)

	exportButton := widget.NewButton("Export PDF", func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			if err := export.Write(writer, doc.Snapshot()); err != nil {
				log.Printf("[UI] PDF export failed: %v", err)
			}
		}, win)
	})

	return container.NewHBox(
		widget.NewLabel("k:"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), degreeSlider),
		widget.NewLabel("u step:"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), stepSlider),
		widget.NewSeparator(),
		pointsCheck,
		curveCheck,
		widget.NewSeparator(),
		clearButton,
		exportButton,
		layout.NewSpacer(),
	)
}
