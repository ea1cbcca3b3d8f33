// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/go-soundpad/soundpad/utils"
)

// Encode writes interleaved float32 samples as a 16-bit PCM WAV file.
// samples length must be a multiple of channels.
func Encode(w io.WriteSeeker, sampleRate, channels int, samples []float32) error {
	if channels <= 0 {
		return fmt.Errorf("%w: %d", ErrUnsupportedWavLayout, channels)
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, channels, 1)

	// Convert in chunks so large recordings don't need a second full-size
	// int slice held at once.
	const chunkFrames = 8192
	chunk := make([]int, 0, chunkFrames*channels)

	// go-audio only emits the RIFF header on the first Write, so a
	// zero-length payload still needs one write to produce a valid file.
	if len(samples) == 0 {
		empty := &goaudio.IntBuffer{
			Data: chunk,
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: 16,
		}
		if err := enc.Write(empty); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	for start := 0; start < len(samples); start += chunkFrames * channels {
		end := min(start+chunkFrames*channels, len(samples))

		chunk = chunk[:0]
		for _, v := range samples[start:end] {
			chunk = append(chunk, int(utils.Float32ToInt16(v)))
		}

		buf := &goaudio.IntBuffer{
			Data: chunk,
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: 16,
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
