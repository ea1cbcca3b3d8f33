// SPDX-License-Identifier: EPL-2.0

package board

import (
	"fmt"
	"strings"
)

// Category groups sounds under a display name. Order within a category is
// the order sounds were added.
type Category struct {
	Name   string   `json:"name"`
	Sounds []*Sound `json:"sounds"`
}

// Soundboard is the full board state: ordered categories of sounds with
// board-wide hotkey uniqueness.
type Soundboard struct {
	Categories []*Category `json:"categories"`
}

func NewSoundboard() *Soundboard {
	return &Soundboard{}
}

// Category returns the category with the given name, or nil.
func (b *Soundboard) Category(name string) *Category {
	for _, c := range b.Categories {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// EnsureCategory returns the named category, creating it if needed.
func (b *Soundboard) EnsureCategory(name string) *Category {
	if c := b.Category(name); c != nil {
		return c
	}
	c := &Category{Name: name}
	b.Categories = append(b.Categories, c)
	return c
}

// AddSound places s in its category, creating the category if needed. A
// non-empty hotkey must be free board-wide.
func (b *Soundboard) AddSound(s *Sound) error {
	if s.Hotkey != "" && b.FindByHotkey(s.Hotkey) != nil {
		return fmt.Errorf("%w: %q", ErrHotkeyTaken, s.Hotkey)
	}
	c := b.EnsureCategory(s.Category)
	c.Sounds = append(c.Sounds, s)
	return nil
}

// RemoveSound deletes the sound with the given id. Reports whether a sound
// was removed.
func (b *Soundboard) RemoveSound(id string) bool {
	for _, c := range b.Categories {
		for i, s := range c.Sounds {
			if s.ID == id {
				c.Sounds = append(c.Sounds[:i], c.Sounds[i+1:]...)
				return true
			}
		}
	}
	return false
}

// FindSound returns the sound with the given id, or nil.
func (b *Soundboard) FindSound(id string) *Sound {
	for _, c := range b.Categories {
		for _, s := range c.Sounds {
			if s.ID == id {
				return s
			}
		}
	}
	return nil
}

// FindByHotkey returns the sound bound to the hotkey (case-insensitive), or
// nil.
func (b *Soundboard) FindByHotkey(key string) *Sound {
	for _, c := range b.Categories {
		for _, s := range c.Sounds {
			if s.Hotkey != "" && strings.EqualFold(s.Hotkey, key) {
				return s
			}
		}
	}
	return nil
}

// AssignHotkey binds key to the sound with the given id, enforcing
// board-wide uniqueness. An empty key clears the binding.
func (b *Soundboard) AssignHotkey(id, key string) error {
	s := b.FindSound(id)
	if s == nil {
		return fmt.Errorf("%w: %q", ErrUnknownSound, id)
	}

	if key == "" {
		s.Hotkey = ""
		return nil
	}

	if other := b.FindByHotkey(key); other != nil && other.ID != id {
		return fmt.Errorf("%w: %q", ErrHotkeyTaken, key)
	}

	s.Hotkey = strings.ToUpper(key)
	return nil
}
