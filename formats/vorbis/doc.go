// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio using
// github.com/jfreymuth/oggvorbis.
//
// Vorbis frames already carry float samples, so decoding is a straight
// passthrough into an audio.Source of interleaved float32 values in
// [-1.0, 1.0] at the stream's native rate and channel layout.
package vorbis
