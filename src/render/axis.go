package render

import (
	"fmt"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
)

// maxCategoryTicks caps how many sample sizes get their own x tick before falling back to
// evenly spaced ticks.
const maxCategoryTicks = 14

// niceAxisBounds expands [min,max] by 5% and rounds outward to the order of magnitude of the span.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates about n ticks between [min, max] on 1/2/2.5/5 steps.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// yAxis builds a padded range around the data with matching ticks.
func yAxis(minY, maxY float64, name string) chart.YAxis {
	lo, hi := niceAxisBounds(minY, maxY)
	ticks := niceTicks(lo, hi, 6)
	if len(ticks) > 0 {
		lo = math.Min(lo, ticks[0].Value)
		hi = math.Max(hi, ticks[len(ticks)-1].Value)
	}
	return chart.YAxis{
		Name:  name,
		Range: &chart.ContinuousRange{Min: lo, Max: hi},
		Ticks: ticks,
	}
}

// xAxis puts a tick on every distinct sample size when there are few of them, as the sweep
// steps sample sizes on a fixed grid. go-chart derives the axis range from the tick extent
// whenever ticks are set, so the first and last tick always sit on the padded bounds.
func xAxis(xs []float64, name string) chart.XAxis {
	distinct := uniqueSorted(xs)
	if len(distinct) == 0 {
		return chart.XAxis{Name: name}
	}
	minX, maxX := distinct[0], distinct[len(distinct)-1]
	if maxX <= minX {
		minX, maxX = minX-1, maxX+1
	}
	pad := (maxX - minX) * 0.04
	rng := &chart.ContinuousRange{Min: minX - pad, Max: maxX + pad}
	if len(distinct) > maxCategoryTicks {
		ticks := niceTicks(rng.Min, rng.Max, 8)
		rng.Min = math.Min(rng.Min, ticks[0].Value)
		rng.Max = math.Max(rng.Max, ticks[len(ticks)-1].Value)
		return chart.XAxis{Name: name, Range: rng, Ticks: ticks}
	}
	ticks := make([]chart.Tick, 0, len(distinct)+2)
	ticks = append(ticks, chart.Tick{Value: rng.Min})
	for _, x := range distinct {
		ticks = append(ticks, chart.Tick{Value: x, Label: formatTick(x)})
	}
	ticks = append(ticks, chart.Tick{Value: rng.Max})
	return chart.XAxis{Name: name, Range: rng, Ticks: ticks}
}

func uniqueSorted(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	sort.Float64s(out)
	n := 0
	for i, x := range out {
		if i == 0 || x != out[n-1] {
			out[n] = x
			n++
		}
	}
	return out[:n]
}
