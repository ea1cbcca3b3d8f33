package audio

import "fmt"

// Remixer converts the channel layout of src to a fixed target channel
// count. Downmixing averages source channels; upmixing from mono duplicates
// the single channel. Other upmix shapes copy the first source channels and
// pad the rest with the average.
type Remixer struct {
	src      Source
	channels int
	tmp      []float32
}

func NewRemixer(src Source, channels int) *Remixer {
	return &Remixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}
}

func (m *Remixer) SampleRate() int { return m.src.SampleRate() }
func (m *Remixer) Channels() int   { return m.channels }

func (m *Remixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *Remixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.src.Channels() == m.channels {
		// Pass-through: layouts already match
		return m.src.ReadSamples(dst)
	}
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	srcChannels := m.src.Channels()
	maxFrames := len(dst) / m.channels
	samplesNeeded := maxFrames * srcChannels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		m.tmp = make([]float32, newCap)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp[:samplesNeeded])
	if n == 0 {
		return 0, err
	}
	frames := n / srcChannels

	switch {
	case srcChannels == 1:
		// Mono upmix: duplicate into every target channel
		for f := range frames {
			v := m.tmp[f]
			base := f * m.channels
			for c := range m.channels {
				dst[base+c] = v
			}
		}
	case m.channels == 1:
		m.downmixMono(dst, frames, srcChannels)
	default:
		// General reshape: copy what maps directly, pad with the frame average
		invChannels := float32(1.0) / float32(srcChannels)
		for f := range frames {
			srcBase := f * srcChannels
			dstBase := f * m.channels

			sum := float32(0)
			for c := range srcChannels {
				sum += m.tmp[srcBase+c]
			}
			avg := sum * invChannels

			for c := range m.channels {
				if c < srcChannels {
					dst[dstBase+c] = m.tmp[srcBase+c]
				} else {
					dst[dstBase+c] = avg
				}
			}
		}
	}

	return frames * m.channels, err
}

// downmixMono averages all source channels into one.
func (m *Remixer) downmixMono(dst []float32, frames, srcChannels int) {
	switch srcChannels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	case 4: // Quad
		for f := range frames {
			idx := f << 2
			sum := m.tmp[idx] + m.tmp[idx+1] + m.tmp[idx+2] + m.tmp[idx+3]
			dst[f] = sum * 0.25
		}
	default:
		invChannels := float32(1.0) / float32(srcChannels)
		for f := range frames {
			sum := float32(0)
			baseIdx := f * srcChannels
			for c := range srcChannels {
				sum += m.tmp[baseIdx+c]
			}
			dst[f] = sum * invChannels
		}
	}
}
