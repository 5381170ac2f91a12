// Package render draws threshold latency series as a line chart: raster PNGs through go-chart
// for the viewer, vector files through gonum/plot for export.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/BullsharkThresholdReport/src/analysis"
	"github.com/iafilius/BullsharkThresholdReport/src/sweep"
)

// Options control the figure layout.
type Options struct {
	Width  int
	Height int
	Title  string
	XLabel string
	YLabel string
}

// DefaultOptions is a 14x6 inch figure at 100 dpi.
func DefaultOptions(sw sweep.Sweep) Options {
	return Options{
		Width:  1400,
		Height: 600,
		Title:  sw.Title(),
		XLabel: "Sample size",
		YLabel: "Latency (sec)",
	}
}

// ErrNoSeries is returned when there is nothing to draw.
var ErrNoSeries = errors.New("no series to render")

// lineStyle draws a line through circle markers in one color.
func lineStyle(c color.RGBA) chart.Style {
	col := drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
}

// Chart renders all series onto one figure. colors[i] is used for series[i].
func Chart(series []analysis.Series, colors []color.RGBA, opts Options) (image.Image, error) {
	var buf bytes.Buffer
	if err := renderPNG(&buf, series, colors, opts); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

func renderPNG(w io.Writer, series []analysis.Series, colors []color.RGBA, opts Options) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	if len(colors) < len(series) {
		return fmt.Errorf("need %d colors, got %d", len(series), len(colors))
	}
	var allX []float64
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	out := make([]chart.Series, 0, len(series))
	for i, s := range series {
		if len(s.Points) == 0 {
			return fmt.Errorf("series %q has no points", s.Label)
		}
		xs, ys := s.XValues(), s.YValues()
		allX = append(allX, xs...)
		for _, y := range ys {
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
		out = append(out, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(colors[i]),
		})
	}
	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      xAxis(allX, opts.XLabel),
		YAxis:      yAxis(minY, maxY, opts.YLabel),
		Series:     out,
	}
	// chart.Legend anchors at the top-left corner of the plot area.
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
