// SPDX-License-Identifier: EPL-2.0

// Package soundpad is the audio core of a soundboard: a library of short
// clips that can be decoded, played, recorded, trimmed and run through
// offline effects.
//
// # Layout
//
// The root package holds the file codec: decoding any supported format into
// an audio.Buffer and encoding buffers back to WAV, selected by file
// extension. The heavier machinery lives in subpackages:
//
//   - audio: Source/Buffer primitives, resampling, channel remixing
//   - formats/{wav,mp3,vorbis,aiff}: per-format decoders (WAV also encodes)
//   - effects: pitch and speed transforms applied to decoded buffers
//   - trim: time-range extraction and file metadata queries
//   - engine: playback voices, live capture, device enumeration
//   - session: recording orchestration above the engine
//   - board, storage: soundboard domain entities and their persistence
//
// # Quick Start
//
//	buf, err := soundpad.ReadFile("clip.mp3")
//	if err != nil {
//	    // Handle error
//	}
//	err = soundpad.WriteFile("clip.wav", buf)
//
// # Supported Formats
//
// Decoding: WAV, MP3, Ogg Vorbis and AIFF. Encoding: 16-bit PCM WAV.
//
// Encoded output is written to a temporary file and renamed into place, so a
// failed encode never leaves a half-written file at the destination.
package soundpad
