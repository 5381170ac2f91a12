package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iafilius/BullsharkThresholdReport/src/analysis"
)

const dpi = 100

var vectorFormats = map[string]bool{
	".svg": true, ".pdf": true, ".eps": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
}

// Export writes the chart to path. The format follows the extension: .png goes through the same
// renderer as the viewer, the other formats through gonum/plot.
func Export(path string, series []analysis.Series, colors []color.RGBA, opts Options) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".png":
		return exportPNG(path, series, colors, opts)
	case vectorFormats[ext]:
		p, err := buildPlot(series, colors, opts)
		if err != nil {
			return err
		}
		w := vg.Length(opts.Width) / dpi * vg.Inch
		h := vg.Length(opts.Height) / dpi * vg.Inch
		if err := p.Save(w, h, path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}
}

func exportPNG(path string, series []analysis.Series, colors []color.RGBA, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := renderPNG(f, series, colors, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildPlot(series []analysis.Series, colors []color.RGBA, opts Options) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	if len(colors) < len(series) {
		return nil, fmt.Errorf("need %d colors, got %d", len(series), len(colors))
	}
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter
	p.Add(plotter.NewGrid())

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = pt.SampleSize
			xys[j].Y = pt.LatencySeconds
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.LineStyle.Color = colors[i]
		line.LineStyle.Width = vg.Points(1.5)
		points.GlyphStyle.Color = colors[i]
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Radius = vg.Points(3)
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	return p, nil
}
