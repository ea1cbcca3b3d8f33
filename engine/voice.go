// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gen2brain/malgo"

	"github.com/go-soundpad/soundpad/audio"
	"github.com/go-soundpad/soundpad/utils"
)

// voice is one live playback instance of a clip: its own output device, a
// reference to the decoded samples, a volume scalar and a loop flag. The
// fill callback runs on the backend's device thread; pos is touched only
// there once the device has started.
type voice struct {
	clipID   string
	data     []float32
	channels int
	volume   float32
	loop     bool

	pos  int
	done atomic.Bool

	dev      *malgo.Device
	teardown sync.Once
	endOnce  sync.Once
	onEnd    func()
}

// startVoice opens and starts a playback device for the clip. Caller holds
// the engine lock.
func (e *Engine) startVoice(clipID string, clip *audio.Buffer, volume float32, loop bool) (*voice, error) {
	v := &voice{
		clipID:   clipID,
		data:     clip.Data,
		channels: clip.Channels,
		volume:   volume,
		loop:     loop,
	}
	v.onEnd = func() { go e.voiceEnded(clipID, v) }

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatS16
	cfg.Playback.Channels = uint32(e.cfg.Channels)
	cfg.SampleRate = uint32(e.cfg.SampleRate)
	cfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: func(out, _ []byte, frameCount uint32) {
			v.fill(out, frameCount)
		},
	}

	dev, err := malgo.InitDevice(e.ctx.Context, cfg, callbacks)
	if err != nil {
		return nil, fmt.Errorf("%w: playback init for %q: %v", ErrDevice, clipID, err)
	}
	v.dev = dev

	if err := dev.Start(); err != nil {
		dev.Uninit()
		return nil, fmt.Errorf("%w: playback start for %q: %v", ErrDevice, clipID, err)
	}

	return v, nil
}

// fill writes frameCount frames of 16-bit PCM into out, scaled by the voice
// volume. Runs on the device callback thread.
func (v *voice) fill(out []byte, frameCount uint32) {
	samples := int(frameCount) * v.channels

	for i := range samples {
		if v.pos >= len(v.data) {
			if v.loop && len(v.data) > 0 {
				v.pos = 0
			} else {
				// Pad the rest with silence and signal completion once.
				for j := i; j < samples; j++ {
					binary.LittleEndian.PutUint16(out[2*j:], 0)
				}
				v.done.Store(true)
				v.endOnce.Do(v.onEnd)
				return
			}
		}

		s := utils.Float32ToInt16(v.data[v.pos] * v.volume)
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
		v.pos++
	}
}

// finished reports whether the voice reached its natural end.
func (v *voice) finished() bool {
	return v.done.Load()
}

// halt stops and releases the device. Idempotent; must not be called from
// the device callback thread.
func (v *voice) halt() {
	v.teardown.Do(func() {
		v.done.Store(true)
		_ = v.dev.Stop()
		v.dev.Uninit()
	})
}
