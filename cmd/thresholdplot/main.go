// thresholdplot draws the Sparse Bullshark direct-commit threshold sweep.
//
// It loads sparse_bullshark_threshold_<T>.csv for every threshold of the sweep, averages latency
// per sample size and opens a window with one line per threshold. Any missing or malformed file
// aborts the run before a window is shown.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/iafilius/BullsharkThresholdReport/src/analysis"
	"github.com/iafilius/BullsharkThresholdReport/src/logging"
	"github.com/iafilius/BullsharkThresholdReport/src/palette"
	"github.com/iafilius/BullsharkThresholdReport/src/render"
	"github.com/iafilius/BullsharkThresholdReport/src/sweep"
)

type report struct {
	sweep  sweep.Sweep
	series []analysis.Series
	colors []color.RGBA
	opts   render.Options
	image  image.Image
}

// buildReport runs the whole load, aggregate and render pipeline.
func buildReport(sw sweep.Sweep, caption string) (*report, error) {
	defer logging.TimeTrack(time.Now(), "build report")
	series, err := analysis.BuildSeries(sw)
	if err != nil {
		return nil, err
	}
	colors, err := palette.Blues(len(series))
	if err != nil {
		return nil, err
	}
	opts := render.DefaultOptions(sw)
	img, err := render.Chart(series, colors, opts)
	if err != nil {
		return nil, err
	}
	return &report{
		sweep:  sw,
		series: series,
		colors: colors,
		opts:   opts,
		image:  render.Caption(img, caption),
	}, nil
}

func main() {
	configPath := flag.String("config", "", "Optional YAML sweep file (thresholds, file_pattern, dir, latency_divisor, validators)")
	dir := flag.String("dir", "", "Directory holding the threshold result files (overrides the sweep file)")
	exportPath := flag.String("export", "", "Also write the chart to this file (.png, .svg, .pdf, .eps, .jpg, .tif)")
	caption := flag.String("caption", "", "Optional caption stamped bottom-left on the chart")
	noWindow := flag.Bool("no-window", false, "Do not open the viewer window")
	logLevel := flag.String("log-level", "warn", "Log level (debug|info|warn|error)")
	flag.Parse()

	logging.ApplyLogLevel(*logLevel)

	sw, err := sweep.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *dir != "" {
		sw.Dir = *dir
	}

	rep, err := buildReport(sw, *caption)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logging.Infof("rendered %d series", len(rep.series))

	if *exportPath != "" {
		if err := render.Export(*exportPath, rep.series, rep.colors, rep.opts); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		logging.Infof("chart written to %s", *exportPath)
	}
	if *noWindow {
		return
	}
	showViewer(rep)
}
