package main

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/BullsharkThresholdReport/src/logging"
	"github.com/iafilius/BullsharkThresholdReport/src/render"
)

type viewer struct {
	window fyne.Window
	chart  *canvas.Image
	status *widget.Label
}

// newViewer builds the chart window without showing it.
func newViewer(a fyne.App, title string, img image.Image, w, h int) *viewer {
	win := a.NewWindow(title)
	v := &viewer{window: win}

	v.chart = canvas.NewImageFromImage(img)
	v.chart.FillMode = canvas.ImageFillContain
	v.chart.SetMinSize(fyne.NewSize(float32(w)*0.6, float32(h)*0.6))
	v.status = widget.NewLabel("")

	export := fyne.NewMenuItem("Export Chart…", func() { v.exportChartPNG("threshold_latency.png") })
	win.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File", export)))
	win.SetContent(container.NewBorder(nil, v.status, nil, nil, v.chart))
	win.Resize(fyne.NewSize(float32(w), float32(h)+40))
	return v
}

func (v *viewer) exportChartPNG(defaultName string) {
	if v.chart == nil || v.chart.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", v.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := render.WritePNG(wc, v.chart.Image); err != nil {
			logging.Errorf("export chart: %v", err)
			v.status.SetText("Export failed: " + err.Error())
			return
		}
		v.status.SetText("Exported " + wc.URI().Path())
	}, v.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// showViewer opens the window and blocks until it is closed.
func showViewer(rep *report) {
	a := app.NewWithID("com.bullshark.thresholdplot")
	v := newViewer(a, rep.opts.Title, rep.image, rep.opts.Width, rep.opts.Height)
	v.window.ShowAndRun()
}
