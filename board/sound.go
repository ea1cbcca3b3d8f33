// SPDX-License-Identifier: EPL-2.0

// Package board holds the soundboard domain entities: sounds, categories
// and the board itself. It knows nothing about audio processing, devices or
// persistence; it is pure state and the rules that guard it.
package board

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrVolumeOutOfRange = errors.New("volume must be between 0 and 1")
	ErrHotkeyTaken      = errors.New("hotkey already assigned")
	ErrUnknownSound     = errors.New("unknown sound")
)

// Sound is one clip on the board: identity, playback configuration and
// display metadata.
type Sound struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FilePath string `json:"file_path"`
	Category string `json:"category"`

	Volume float64 `json:"volume"`
	Loop   bool    `json:"loop"`
	Hotkey string `json:"hotkey,omitempty"`

	ImagePath string   `json:"image_path,omitempty"`
	Effects   []string `json:"effects,omitempty"`
}

// NewSound creates a sound for filePath in the given category. The display
// name defaults to the file name without its extension.
func NewSound(filePath, category string) *Sound {
	base := filepath.Base(filePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return &Sound{
		ID:       uuid.NewString(),
		Name:     name,
		FilePath: filePath,
		Category: category,
		Volume:   1.0,
	}
}

// SetVolume updates the playback volume, rejecting values outside [0, 1].
func (s *Sound) SetVolume(v float64) error {
	if v < 0 || v > 1 {
		return ErrVolumeOutOfRange
	}
	s.Volume = v
	return nil
}

// ToggleLoop flips the loop flag.
func (s *Sound) ToggleLoop() {
	s.Loop = !s.Loop
}

// AddEffect records an applied effect name, once.
func (s *Sound) AddEffect(name string) {
	for _, e := range s.Effects {
		if e == name {
			return
		}
	}
	s.Effects = append(s.Effects, name)
}

// RemoveEffect drops an applied effect name if present.
func (s *Sound) RemoveEffect(name string) {
	for i, e := range s.Effects {
		if e == name {
			s.Effects = append(s.Effects[:i], s.Effects[i+1:]...)
			return
		}
	}
}
