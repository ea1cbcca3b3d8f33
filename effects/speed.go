// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/go-soundpad/soundpad/audio"
)

// Preset speed factors.
const (
	SlowedFactor = 0.8
	FastFactor   = 1.5
)

// Speed changes duration and pitch together. Factor > 1 plays faster and
// higher, Factor < 1 slower and lower.
type Speed struct {
	Factor float64
}

func NewSpeed(factor float64) (*Speed, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("%w: speed %v", ErrInvalidFactor, factor)
	}
	return &Speed{Factor: factor}, nil
}

// Slowed is the 0.8x preset.
func Slowed() *Speed { return &Speed{Factor: SlowedFactor} }

// Fast is the 1.5x preset.
func Fast() *Speed { return &Speed{Factor: FastFactor} }

func (s *Speed) Name() string {
	switch {
	case s.Factor < 1.0:
		return fmt.Sprintf("Slowed (%.2fx)", s.Factor)
	case s.Factor > 1.0:
		return fmt.Sprintf("Fast (%.2fx)", s.Factor)
	default:
		return "Normal Speed"
	}
}

// Apply resamples each channel to round(frames/Factor) samples. There is no
// duration-restoring pass, so the output is shorter or longer than the input.
func (s *Speed) Apply(buf *audio.Buffer) (*audio.Buffer, error) {
	if s.Factor == 1.0 {
		return buf, nil
	}

	frames := buf.Frames()
	newFrames := scaledLength(frames, s.Factor)

	out := make([][]float32, buf.Channels)
	for c := range out {
		out[c] = resampleChannel(buf.Channel(c), newFrames)
	}

	return audio.NewBuffer(interleave(out), buf.Rate, buf.Channels)
}
