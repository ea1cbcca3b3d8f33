// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks the rest of the module is
// assembled from:
//   - Source interface for streamed audio input
//   - Buffer for fully decoded, immutable audio payloads
//   - Resampler for sample rate conversion
//   - Remixer for channel layout conversion
//   - Format registry for decoder registration by file extension
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing them
// to be chained together in processing pipelines.
//
// # Buffers
//
// A Buffer is a decoded payload with its sample rate and channel count:
//
//	buf, err := audio.ReadAll(source)
//	fmt.Println(buf.Frames(), buf.Seconds())
//
// Buffers are immutable by convention: transforms return new Buffers rather
// than mutating their input, so intermediate results of an effect chain can
// be shared safely. NewBufferSource replays a Buffer through streaming
// stages:
//
//	resampled := audio.NewResampler(audio.NewBufferSource(buf), 44100)
//
// # Resampling and Remixing
//
// The Resampler changes the sample rate using cubic interpolation with a
// simple anti-aliasing filter on the downsampling path. The Remixer converts
// between channel layouts: averaging for downmix, duplication for mono
// upmix. Both preserve streaming semantics and compose with any Source.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes processing independent of source bit depth
// and avoids clipping in intermediate stages.
//
// # Error Handling
//
// Streaming stages return io.EOF when no more data is available. Other
// errors indicate problems with the source or processing.
package audio
