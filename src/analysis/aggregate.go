package analysis

import (
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Point is the mean latency of all runs sharing one sample size.
type Point struct {
	SampleSize     float64
	LatencySeconds float64
	// Runs is the number of rows averaged into this point.
	Runs        int
	MeanOrdered float64
}

// Aggregate groups records by sample size and returns the mean latency of each group divided by
// divisor, ordered by ascending sample size.
func Aggregate(records []Record, divisor float64) []Point {
	groups := lo.GroupBy(records, func(r Record) float64 { return r.SampleSize })
	keys := lo.Keys(groups)
	sort.Float64s(keys)

	points := make([]Point, 0, len(keys))
	for _, k := range keys {
		rows := groups[k]
		latency := lo.Map(rows, func(r Record, _ int) float64 { return r.LatencyRaw })
		ordered := lo.Map(rows, func(r Record, _ int) float64 { return r.Ordered })
		points = append(points, Point{
			SampleSize:     k,
			LatencySeconds: stat.Mean(latency, nil) / divisor,
			Runs:           len(rows),
			MeanOrdered:    stat.Mean(ordered, nil),
		})
	}
	return points
}
