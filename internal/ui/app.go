package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"SplineBoard/internal/state"
)

// RunApp assembles the main window and blocks until it is closed. A
// non-empty shareLink is shown in the status bar so other machines can
// join the session.
func RunApp(shareLink string, doc *state.Document) {
	myApp := app.New()
	myWindow := myApp.NewWindow("SplineBoard")
	myWindow.Resize(fyne.NewSize(800, 800))

	board := NewCurveWidget(doc)

	// Edits can arrive from the session transport's goroutines, so the
	// refresh is routed through the fyne event loop.
	doc.OnChange = func() {
		fyne.Do(board.Refresh)
	}

	status := widget.NewLabel("Ready")
	if shareLink != "" {
		status.SetText("Share link: " + shareLink)
	}

	toolbar := NewToolbar(doc, myWindow)
	content := container.NewBorder(toolbar, status, nil, nil, board)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
