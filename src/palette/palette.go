// Package palette produces the sequential color ramp used to tell threshold series apart.
package palette

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette/brewer"
)

const (
	// Lightest and darkest positions sampled from the ramp; the low end of Blues is too pale to
	// read against a white plot background.
	rampStart = 0.4
	rampEnd   = 1.0

	bluesClasses = 9
)

// Blues returns n colors sampled evenly from the ColorBrewer Blues ramp between rampStart and
// rampEnd, lightest first. A single color is the darkest one.
func Blues(n int) ([]color.RGBA, error) {
	if n <= 0 {
		return nil, nil
	}
	p, err := brewer.GetPalette(brewer.TypeSequential, "Blues", bluesClasses)
	if err != nil {
		return nil, fmt.Errorf("blues palette: %w", err)
	}
	stops := make([]color.RGBA, 0, bluesClasses)
	for _, c := range p.Colors() {
		stops = append(stops, color.RGBAModel.Convert(c).(color.RGBA))
	}
	out := make([]color.RGBA, n)
	for i := range out {
		pos := rampEnd
		if n > 1 {
			pos = rampStart + (rampEnd-rampStart)*float64(i)/float64(n-1)
		}
		out[i] = sample(stops, pos)
	}
	return out, nil
}

// sample linearly interpolates the ramp at pos in [0,1].
func sample(stops []color.RGBA, pos float64) color.RGBA {
	if pos <= 0 {
		return stops[0]
	}
	last := len(stops) - 1
	if pos >= 1 {
		return stops[last]
	}
	f := pos * float64(last)
	i := int(f)
	frac := f - float64(i)
	a, b := stops[i], stops[i+1]
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*frac + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// Luminance is the relative luminance (Rec. 709 weights) of c in [0,255].
func Luminance(c color.RGBA) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}
