// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/go-soundpad/soundpad/audio"
)

// Pitch shifts frequency content by Factor without changing duration.
// Factor > 1 raises the pitch, Factor < 1 lowers it.
type Pitch struct {
	Factor float64
}

func NewPitch(factor float64) (*Pitch, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("%w: pitch %v", ErrInvalidFactor, factor)
	}
	return &Pitch{Factor: factor}, nil
}

func (p *Pitch) Name() string {
	return fmt.Sprintf("Pitch (%.2fx)", p.Factor)
}

// Apply resamples each channel to round(frames/Factor) samples, which moves
// both pitch and duration, then linearly interpolates the result back to the
// original frame count so only the pitch change remains.
func (p *Pitch) Apply(buf *audio.Buffer) (*audio.Buffer, error) {
	if p.Factor == 1.0 {
		return buf, nil
	}

	frames := buf.Frames()
	shifted := make([][]float32, buf.Channels)
	for c := range shifted {
		resampled := resampleChannel(buf.Channel(c), scaledLength(frames, p.Factor))
		shifted[c] = stretchLinear(resampled, frames)
	}

	return audio.NewBuffer(interleave(shifted), buf.Rate, buf.Channels)
}
