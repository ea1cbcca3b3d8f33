// SPDX-License-Identifier: EPL-2.0

// Package effects implements offline DSP transforms for soundboard clips.
//
// Two effects exist, both parameterized by a positive factor fixed at
// construction:
//
//   - Pitch changes frequency content while preserving duration: each channel
//     is resampled to round(frames/factor) samples and then linearly
//     interpolated back to the original length.
//   - Speed changes duration and pitch together: each channel is resampled to
//     round(frames/factor) samples with no restoring pass. Slowed (0.8x) and
//     Fast (1.5x) are fixed-parameter presets of Speed, not separate
//     algorithms.
//
// A factor of exactly 1.0 is an identity transform and returns the input
// buffer unchanged. Effects are pure: the same input always yields the same
// output, and the input buffer is never modified.
//
// Effects are applied to files through engine.ApplyEffects, which chains
// them in order:
//
//	pitch, _ := effects.NewPitch(1.25)
//	err := eng.ApplyEffects("in.wav", "out.wav", []effects.Effect{pitch, effects.Slowed()})
package effects
