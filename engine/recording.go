// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gen2brain/malgo"
	"github.com/sirupsen/logrus"

	"github.com/go-soundpad/soundpad"
	"github.com/go-soundpad/soundpad/audio"
	"github.com/go-soundpad/soundpad/utils"
)

// recording is the single live capture session. The device callback is the
// only writer of blocks while active; the controlling goroutine only flips
// the active flag and drains the blocks after deactivation, so a mutex on
// the append plus the atomic flag is all the synchronization needed.
type recording struct {
	dev      *malgo.Device
	rate     int
	channels int

	mu     sync.Mutex
	blocks [][]float32
	active atomic.Bool
}

func (r *recording) append(block []float32) {
	r.mu.Lock()
	r.blocks = append(r.blocks, block)
	r.mu.Unlock()
}

// drain deactivates the stream and returns the captured blocks.
func (r *recording) drain() [][]float32 {
	r.active.Store(false)
	r.mu.Lock()
	blocks := r.blocks
	r.blocks = nil
	r.mu.Unlock()
	return blocks
}

// abort tears the stream down discarding everything captured.
func (r *recording) abort() {
	r.active.Store(false)
	if r.dev != nil {
		_ = r.dev.Stop()
		r.dev.Uninit()
	}
}

// StartRecording opens an input capture stream and begins accumulating
// blocks as the backend delivers them. device selects the input by decoded
// id or name substring; empty means the system default. rate and channels
// fall back to the engine defaults when non-positive.
//
// Fails with ErrAlreadyRecording if a stream is already active and with
// ErrDevice / ErrNoDevice when the backend cannot deliver the stream.
func (e *Engine) StartRecording(device string, rate, channels int) error {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if channels <= 0 {
		channels = DefaultChannels
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	if e.rec != nil {
		return ErrAlreadyRecording
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = uint32(channels)
	cfg.SampleRate = uint32(rate)
	cfg.Alsa.NoMMap = 1

	if device != "" {
		infos, err := e.ctx.Devices(malgo.Capture)
		if err != nil {
			return fmt.Errorf("%w: enumerate capture devices: %v", ErrDevice, err)
		}
		info, err := matchInputDevice(infos, device)
		if err != nil {
			return err
		}
		cfg.Capture.DeviceID = info.ID.Pointer()
	}

	rec := &recording{rate: rate, channels: channels}
	rec.active.Store(true)

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, in []byte, frameCount uint32) {
			if !rec.active.Load() {
				return
			}
			rec.append(pcm16ToFloat32(in, int(frameCount)*channels))
		},
		Stop: func() {
			if rec.active.Load() {
				e.log.Warn("capture device stopped unexpectedly")
			}
		},
	}

	dev, err := malgo.InitDevice(e.ctx.Context, cfg, callbacks)
	if err != nil {
		return fmt.Errorf("%w: capture init: %v", ErrDevice, err)
	}
	rec.dev = dev

	if err := dev.Start(); err != nil {
		dev.Uninit()
		return fmt.Errorf("%w: capture start: %v", ErrDevice, err)
	}

	e.rec = rec

	e.log.WithFields(logrus.Fields{
		"rate":     rate,
		"channels": channels,
		"device":   device,
	}).Debug("recording started")

	return nil
}

// StopRecording stops the capture stream, concatenates the accumulated
// blocks in arrival order and encodes them to outputPath as WAV at the rate
// and channel count the stream was actually opened with. Returns outputPath.
//
// Fails with ErrNotRecording if no stream is active and ErrEmptyRecording
// if nothing was captured (no file is written in that case).
func (e *Engine) StopRecording(outputPath string) (string, error) {
	e.mu.Lock()
	rec := e.rec
	e.rec = nil
	e.mu.Unlock()

	if rec == nil {
		return "", ErrNotRecording
	}

	blocks := rec.drain()
	if rec.dev != nil {
		_ = rec.dev.Stop()
		rec.dev.Uninit()
	}

	if len(blocks) == 0 {
		return "", ErrEmptyRecording
	}

	total := 0
	for _, b := range blocks {
		total += len(b)
	}
	data := make([]float32, 0, total)
	for _, b := range blocks {
		data = append(data, b...)
	}

	buf, err := audio.NewBuffer(data, rec.rate, rec.channels)
	if err != nil {
		return "", err
	}
	if err := soundpad.WriteFile(outputPath, buf); err != nil {
		return "", err
	}

	e.log.WithFields(logrus.Fields{
		"path":   outputPath,
		"frames": buf.Frames(),
	}).Debug("recording saved")

	return outputPath, nil
}

// IsRecording reports whether a capture stream is active.
func (e *Engine) IsRecording() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec != nil && e.rec.active.Load()
}

// pcm16ToFloat32 converts little-endian 16-bit PCM bytes to a fresh float32
// block. samples caps the conversion to the frame count the backend
// reported.
func pcm16ToFloat32(in []byte, samples int) []float32 {
	if samples > len(in)/2 {
		samples = len(in) / 2
	}

	block := make([]float32, samples)
	for i := range block {
		block[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(in[2*i:])))
	}
	return block
}
