// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/go-soundpad/soundpad/audio"
)

// Effect is a deterministic buffer-to-buffer transform. Apply never mutates
// its input; identity configurations may return the input buffer itself.
type Effect interface {
	Apply(buf *audio.Buffer) (*audio.Buffer, error)
	Name() string
}

// New builds an effect from a name and a parameter map. This is the single
// parsing step between textual effect descriptions (presets, saved boards)
// and the typed effect values the engine applies.
//
// Recognized names:
//   - "pitch": requires params["factor"] > 0
//   - "speed": requires params["factor"] > 0
//   - "slowed": Speed 0.8 preset, no params
//   - "fast": Speed 1.5 preset, no params
func New(name string, params map[string]float64) (Effect, error) {
	switch name {
	case "pitch":
		return NewPitch(params["factor"])
	case "speed":
		return NewSpeed(params["factor"])
	case "slowed":
		return Slowed(), nil
	case "fast":
		return Fast(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
}
