// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/go-soundpad/soundpad/utils"
)

// resampleChannel resamples one channel to newLen samples using cubic
// interpolation over a uniform position grid.
func resampleChannel(data []float32, newLen int) []float32 {
	if newLen <= 0 || len(data) == 0 {
		return []float32{}
	}
	if newLen == len(data) {
		out := make([]float32, newLen)
		copy(out, data)
		return out
	}

	out := make([]float32, newLen)

	// Map output index i to source position so both endpoints line up.
	var step float64
	if newLen > 1 {
		step = float64(len(data)-1) / float64(newLen-1)
	}

	last := len(data) - 1
	for i := range out {
		pos := float64(i) * step
		idx := int(pos)
		if idx > last {
			idx = last
		}
		frac := float32(pos - float64(idx))

		y1 := data[idx]
		y0 := data[clampIndex(idx-1, last)]
		y2 := data[clampIndex(idx+1, last)]
		y3 := data[clampIndex(idx+2, last)]

		out[i] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
	}

	return out
}

// stretchLinear interpolates data to exactly newLen samples over a uniform
// index grid, as a plain linear interpolation.
func stretchLinear(data []float32, newLen int) []float32 {
	if newLen <= 0 || len(data) == 0 {
		return []float32{}
	}

	out := make([]float32, newLen)

	var step float64
	if newLen > 1 {
		step = float64(len(data)-1) / float64(newLen-1)
	}

	last := len(data) - 1
	for i := range out {
		pos := float64(i) * step
		idx := int(pos)
		if idx >= last {
			out[i] = data[last]
			continue
		}
		frac := float32(pos - float64(idx))
		out[i] = utils.Lerp(data[idx], data[idx+1], frac)
	}

	return out
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

// scaledLength returns round(frames / factor).
func scaledLength(frames int, factor float64) int {
	return int(math.Round(float64(frames) / factor))
}

// interleave recombines per-channel slices, all of equal length, preserving
// channel order.
func interleave(channels [][]float32) []float32 {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	out := make([]float32, frames*len(channels))
	for c, ch := range channels {
		for f, v := range ch {
			out[f*len(channels)+c] = v
		}
	}
	return out
}
