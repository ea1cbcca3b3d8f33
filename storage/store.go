// SPDX-License-Identifier: EPL-2.0

// Package storage owns the on-disk layout of a soundboard: where sound
// files and images live, and the JSON persistence of the board state. The
// audio engine consumes only the path-resolution surface; it never decides
// directory layout itself.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/go-soundpad/soundpad/board"
)

const configName = "config.json"

// Store resolves paths under a base directory and persists board state:
//
//	<base>/sounds/<category>/<file>
//	<base>/img/<file>
//	<base>/config.json
type Store struct {
	baseDir  string
	soundDir string
	imgDir   string
	log      *logrus.Entry
}

// New creates the base layout, making directories as needed.
func New(baseDir string) (*Store, error) {
	s := &Store{
		baseDir:  baseDir,
		soundDir: filepath.Join(baseDir, "sounds"),
		imgDir:   filepath.Join(baseDir, "img"),
		log:      logrus.WithField("component", "storage"),
	}

	for _, dir := range []string{s.baseDir, s.soundDir, s.imgDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	return s, nil
}

// SoundPath resolves the location for a sound file in a category, creating
// the category directory if needed.
func (s *Store) SoundPath(category, filename string) (string, error) {
	dir := filepath.Join(s.soundDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return filepath.Join(dir, filename), nil
}

// ImagePath resolves the location for an image file.
func (s *Store) ImagePath(filename string) string {
	return filepath.Join(s.imgDir, filename)
}

// Save persists the board state as JSON.
func (s *Store) Save(b *board.Soundboard) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding board: %w", err)
	}

	path := filepath.Join(s.baseDir, configName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Load reads the persisted board state. Returns (nil, nil) when nothing has
// been saved yet.
func (s *Store) Load() (*board.Soundboard, error) {
	path := filepath.Join(s.baseDir, configName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	var b board.Soundboard
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &b, nil
}

// DeleteSoundFile removes a sound file. Failures are logged and swallowed
// so a larger operation (category removal, board cleanup) keeps going.
func (s *Store) DeleteSoundFile(path string) {
	s.deleteFile(path, "sound")
}

// DeleteImageFile removes an image file, log-and-continue like
// DeleteSoundFile.
func (s *Store) DeleteImageFile(path string) {
	s.deleteFile(path, "image")
}

func (s *Store) deleteFile(path, kind string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.WithFields(logrus.Fields{
			"path": path,
			"kind": kind,
		}).WithError(err).Warn("could not delete file")
	}
}

// CleanupEmptyCategories removes category directories that hold no files.
func (s *Store) CleanupEmptyCategories() {
	entries, err := os.ReadDir(s.soundDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(s.soundDir, entry.Name())

		children, err := os.ReadDir(dir)
		if err != nil || len(children) > 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			s.log.WithField("path", dir).WithError(err).Warn("could not remove empty category")
		}
	}
}

// CopySoundToCategory copies an external sound file into a category's
// directory and returns the new path.
func (s *Store) CopySoundToCategory(srcPath, category string) (string, error) {
	dst, err := s.SoundPath(category, filepath.Base(srcPath))
	if err != nil {
		return "", err
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", srcPath, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("copying to %s: %w", dst, err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("copying to %s: %w", dst, err)
	}

	return dst, nil
}
