// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Buffer is a fully decoded audio payload: interleaved float32 samples in
// [-1,1] plus the sample rate and channel count they were decoded at.
//
// Buffers are immutable by convention. Every transform produces a new Buffer;
// identity transforms may return the receiver itself. Nothing in this module
// writes into a Buffer's Data after it has been returned to a caller.
type Buffer struct {
	Data     []float32
	Rate     int
	Channels int
}

// NewBuffer validates the invariants (positive rate and channel count,
// len(data) a multiple of channels) and wraps the slice without copying.
func NewBuffer(data []float32, rate, channels int) (*Buffer, error) {
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(data)%channels != 0 {
		return nil, ErrUnalignedBuffer
	}

	return &Buffer{Data: data, Rate: rate, Channels: channels}, nil
}

// Frames returns the number of sample frames (samples per channel).
func (b *Buffer) Frames() int {
	return len(b.Data) / b.Channels
}

// Seconds returns the buffer duration in seconds.
func (b *Buffer) Seconds() float64 {
	return float64(b.Frames()) / float64(b.Rate)
}

// Channel extracts channel c as a new slice. c must be in [0, Channels).
func (b *Buffer) Channel(c int) []float32 {
	frames := b.Frames()
	out := make([]float32, frames)
	for f := range frames {
		out[f] = b.Data[f*b.Channels+c]
	}
	return out
}

// ReadAll drains src into a Buffer. The source is not closed.
func ReadAll(src Source) (*Buffer, error) {
	var data []float32
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	// Decoders may stop mid-frame on truncated input; drop the partial frame
	// so the channel-multiple invariant holds.
	data = data[:len(data)-len(data)%src.Channels()]

	return NewBuffer(data, src.SampleRate(), src.Channels())
}

// BufferSource replays a Buffer as a Source, for feeding decoded audio back
// into streaming stages like Resampler and Remixer.
type BufferSource struct {
	buf *Buffer
	pos int
}

func NewBufferSource(b *Buffer) *BufferSource {
	return &BufferSource{buf: b}
}

func (s *BufferSource) SampleRate() int { return s.buf.Rate }
func (s *BufferSource) Channels() int   { return s.buf.Channels }
func (s *BufferSource) Close() error    { return nil }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Data) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Data[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Data) {
		return n, io.EOF
	}
	return n, nil
}
