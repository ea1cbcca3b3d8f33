// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding and encoding are built on github.com/go-audio/wav, so non-canonical
// chunk layouts and 8/16/24/32-bit PCM input are handled. Output is always
// 16-bit PCM at the sample rate and channel count the caller provides.
//
// The Decoder returns an audio.Source yielding float32 samples in
// [-1.0, 1.0]; Encode takes interleaved float32 samples back to disk:
//
//	source, err := wav.Decoder{}.Decode(file)
//	...
//	err = wav.Encode(outFile, 44100, 2, samples)
//
// Errors:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrUnsupportedBitDepth: PCM bit depth outside 8/16/24/32
//   - ErrUnsupportedWavLayout: header present but unusable
package wav
