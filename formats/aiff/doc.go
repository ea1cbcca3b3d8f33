// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio using github.com/go-audio/aiff.
//
// Only 16-bit PCM files are accepted; other bit depths return
// ErrOnlyPCM16bitSupported. The decoder returns an audio.Source of
// interleaved float32 samples in [-1.0, 1.0] at the file's native
// sample rate and channel layout.
package aiff
