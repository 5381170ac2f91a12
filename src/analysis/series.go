package analysis

import (
	"fmt"
	"time"

	"github.com/iafilius/BullsharkThresholdReport/src/logging"
	"github.com/iafilius/BullsharkThresholdReport/src/sweep"
)

// Series is the aggregated result of one threshold file.
type Series struct {
	Threshold string
	Label     string
	// Index is the position of the threshold in the sweep; the palette is keyed on it.
	Index  int
	Source string
	Points []Point
}

// XValues returns the sample sizes of the series.
func (s Series) XValues() []float64 {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.SampleSize
	}
	return xs
}

// YValues returns the mean latencies in seconds.
func (s Series) YValues() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.LatencySeconds
	}
	return ys
}

// BuildSeries loads every threshold file of the sweep in order. The first missing or malformed
// file aborts the build; no partial result is returned.
func BuildSeries(sw sweep.Sweep) ([]Series, error) {
	defer logging.TimeTrack(time.Now(), "build series")
	out := make([]Series, 0, len(sw.Thresholds))
	for i, t := range sw.Thresholds {
		path := sw.Path(t)
		recs, err := LoadRecords(path)
		if err != nil {
			return nil, fmt.Errorf("threshold %s: %w", t, err)
		}
		pts := Aggregate(recs, sw.LatencyDivisor)
		logging.Debugf("threshold %s: %d rows, %d sample sizes from %s", t, len(recs), len(pts), path)
		out = append(out, Series{
			Threshold: t,
			Label:     sweep.SeriesLabel(t),
			Index:     i,
			Source:    path,
			Points:    pts,
		})
	}
	return out, nil
}
