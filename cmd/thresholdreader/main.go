// thresholdreader prints the per-sample-size aggregation of a threshold sweep without drawing it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iafilius/BullsharkThresholdReport/src/analysis"
	"github.com/iafilius/BullsharkThresholdReport/src/logging"
	"github.com/iafilius/BullsharkThresholdReport/src/sweep"
)

func writeSummary(w io.Writer, series []analysis.Series) {
	for _, s := range series {
		fmt.Fprintf(w, "%s (%s)\n", s.Label, s.Source)
		for _, p := range s.Points {
			fmt.Fprintf(w, "  sample_size=%g runs=%d latency=%.3fs ordered=%.1f\n", p.SampleSize, p.Runs, p.LatencySeconds, p.MeanOrdered)
		}
	}
	fmt.Fprintf(w, "Total series: %d\n", len(series))
}

func main() {
	var configPath, dir, logLevel string
	flag.StringVar(&configPath, "config", "", "Optional YAML sweep file")
	flag.StringVar(&dir, "dir", "", "Directory holding the threshold result files")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	flag.Parse()
	logging.ApplyLogLevel(logLevel)

	sw, err := sweep.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if dir != "" {
		sw.Dir = dir
	}
	series, err := analysis.BuildSeries(sw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	writeSummary(os.Stdout, series)
}
