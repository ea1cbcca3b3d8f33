// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/sirupsen/logrus"

	"github.com/go-soundpad/soundpad"
	"github.com/go-soundpad/soundpad/audio"
	"github.com/go-soundpad/soundpad/effects"
)

// Default output format. Every loaded clip is normalized to this shape so
// playback devices can be opened with one fixed configuration.
const (
	DefaultSampleRate = 44100
	DefaultChannels   = 2
)

// Config sets the engine's output format. Zero values take the defaults.
type Config struct {
	SampleRate int
	Channels   int
}

// Engine owns the set of loaded clips, the active playback voices and the
// single recording stream. It is explicitly constructed and explicitly torn
// down with Cleanup; no package-level state exists.
//
// Control methods (Load, Play, Stop, recording control) are intended for a
// single caller goroutine. The device callback threads driven by the audio
// backend are the only concurrent actors, and they touch per-voice and
// per-recording state only.
type Engine struct {
	cfg Config
	ctx *malgo.AllocatedContext
	log *logrus.Entry

	mu     sync.Mutex
	clips  map[string]*audio.Buffer
	voices map[string]*voice
	rec    *recording
	closed bool
}

// New initializes the audio backend context and returns a ready engine.
func New(cfg Config) (*Engine, error) {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Channels <= 0 {
		cfg.Channels = DefaultChannels
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: init context: %v", ErrDevice, err)
	}

	return &Engine{
		cfg:    cfg,
		ctx:    ctx,
		log:    logrus.WithField("component", "engine"),
		clips:  make(map[string]*audio.Buffer),
		voices: make(map[string]*voice),
	}, nil
}

// Load decodes the file at path and binds it to clipID, replacing any
// previous clip under the same id. A voice already playing the prior decode
// keeps its own reference and is unaffected until replayed.
func (e *Engine) Load(clipID, path string) error {
	buf, err := soundpad.ReadFile(path)
	if err != nil {
		return err
	}

	buf, err = e.normalize(buf)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", path, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	e.clips[clipID] = buf

	e.log.WithFields(logrus.Fields{
		"clip_id": clipID,
		"frames":  buf.Frames(),
	}).Debug("clip loaded")

	return nil
}

// normalize converts a decoded buffer to the engine output format.
func (e *Engine) normalize(buf *audio.Buffer) (*audio.Buffer, error) {
	if buf.Rate == e.cfg.SampleRate && buf.Channels == e.cfg.Channels {
		return buf, nil
	}

	var src audio.Source = audio.NewBufferSource(buf)
	if buf.Channels != e.cfg.Channels {
		src = audio.NewRemixer(src, e.cfg.Channels)
	}
	if buf.Rate != e.cfg.SampleRate {
		src = audio.NewResampler(src, e.cfg.SampleRate)
	}

	return audio.ReadAll(src)
}

// Play starts a voice for clipID at the given volume. If a voice for the id
// is already active it is stopped and replaced; voices never stack. With
// loop=true the voice restarts from the beginning until stopped, otherwise
// it plays once and ends on its own.
func (e *Engine) Play(clipID string, volume float64, loop bool) error {
	if volume < 0 || volume > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidVolume, volume)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}

	clip, ok := e.clips[clipID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotLoaded, clipID)
	}

	if prev, ok := e.voices[clipID]; ok {
		delete(e.voices, clipID)
		prev.halt()
	}

	v, err := e.startVoice(clipID, clip, float32(volume), loop)
	if err != nil {
		return err
	}
	e.voices[clipID] = v

	e.log.WithFields(logrus.Fields{
		"clip_id": clipID,
		"volume":  volume,
		"loop":    loop,
	}).Debug("voice started")

	return nil
}

// Stop halts the voice for clipID if one is active. Stopping a clip that is
// not playing is a no-op, not an error.
func (e *Engine) Stop(clipID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if v, ok := e.voices[clipID]; ok {
		delete(e.voices, clipID)
		v.halt()
	}
}

// StopAll halts every active voice.
func (e *Engine) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for id, v := range e.voices {
		delete(e.voices, id)
		v.halt()
	}
}

// IsPlaying reports whether a voice is currently active for clipID. A
// non-looping voice that reached its end on its own no longer counts as
// playing.
func (e *Engine) IsPlaying(clipID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.voices[clipID]
	if !ok {
		return false
	}
	if v.finished() {
		delete(e.voices, clipID)
		go v.halt()
		return false
	}
	return true
}

// Unload stops any voice for clipID and discards the loaded clip. No-op if
// the id is not loaded.
func (e *Engine) Unload(clipID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if v, ok := e.voices[clipID]; ok {
		delete(e.voices, clipID)
		v.halt()
	}
	delete(e.clips, clipID)
}

// voiceEnded removes a naturally finished voice. Called off the device
// callback thread.
func (e *Engine) voiceEnded(clipID string, v *voice) {
	e.mu.Lock()
	// The map may already point at a replacement voice; only remove v itself.
	if cur, ok := e.voices[clipID]; ok && cur == v {
		delete(e.voices, clipID)
	}
	e.mu.Unlock()

	v.halt()

	e.log.WithField("clip_id", clipID).Debug("voice finished")
}

// ApplyEffects reads inputPath, applies the chain in order (output of step i
// feeds step i+1) and writes the result to outputPath.
func (e *Engine) ApplyEffects(inputPath, outputPath string, chain []effects.Effect) error {
	buf, err := soundpad.ReadFile(inputPath)
	if err != nil {
		return err
	}

	for _, fx := range chain {
		buf, err = fx.Apply(buf)
		if err != nil {
			return fmt.Errorf("applying %s: %w", fx.Name(), err)
		}
	}

	return soundpad.WriteFile(outputPath, buf)
}

// Cleanup stops all voices, aborts any recording without saving and
// releases the audio backend. Safe to call more than once.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true

	voices := e.voices
	e.voices = make(map[string]*voice)
	e.clips = make(map[string]*audio.Buffer)
	rec := e.rec
	e.rec = nil
	e.mu.Unlock()

	for _, v := range voices {
		v.halt()
	}
	if rec != nil {
		rec.abort()
	}

	if err := e.ctx.Uninit(); err != nil {
		e.log.WithError(err).Warn("context uninit failed")
	}
	e.ctx.Free()

	e.log.Debug("engine cleaned up")
}
