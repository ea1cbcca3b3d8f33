// SPDX-License-Identifier: EPL-2.0

// Package engine is the playback and capture core of the soundboard.
//
// An Engine owns three kinds of state:
//
//   - loaded clips: decoded buffers keyed by an opaque clip id, normalized
//     to the engine output format at load time
//   - voices: live playback instances, one output device each, at most one
//     per clip id (replaying a clip replaces its voice)
//   - the recording stream: at most one live capture session per engine
//
// # Threading
//
// Control methods are synchronous and meant for one caller goroutine. The
// audio backend invokes data callbacks on its own threads: a voice's fill
// callback reads only that voice's state, and the capture callback appends
// blocks to the recording under a mutex while an atomic flag marks the
// stream active. The accumulated blocks are only iterated after the stream
// has been deactivated.
//
// Effect application (ApplyEffects) is synchronous and CPU-bound for its
// whole duration; callers needing a responsive UI should run it off their
// interaction thread. There is no cancellation: the only early exit is
// StopRecording, which is a graceful completion that still saves what was
// captured.
//
// # Lifecycle
//
//	eng, err := engine.New(engine.Config{})
//	defer eng.Cleanup()
//
//	err = eng.Load("kick", "sounds/drums/kick.wav")
//	err = eng.Play("kick", 0.8, false)
//
// Cleanup stops everything, discards any unsaved recording and releases the
// backend context. It is idempotent.
package engine
