// SPDX-License-Identifier: EPL-2.0

// Package session orchestrates the recording lifecycle above the engine:
// it tracks the one in-flight recording, generates unique ids and
// filenames, and produces a finished-clip descriptor the caller can
// register with the soundboard.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyRecording = errors.New("recording already active")
	ErrNotRecording     = errors.New("no recording active")
)

// Recorder is the engine subset the session drives.
type Recorder interface {
	StartRecording(device string, rate, channels int) error
	StopRecording(outputPath string) (string, error)
	IsRecording() bool
}

// PathResolver decides where finished recordings land. The session never
// builds directory layouts itself.
type PathResolver interface {
	SoundPath(category, filename string) (string, error)
}

// Clip describes a finished recording, ready to be registered as a
// permanent soundboard clip.
type Clip struct {
	Name     string
	Path     string
	Category string
}

// Session tracks at most one in-flight recording.
type Session struct {
	rec   Recorder
	store PathResolver
	log   *logrus.Entry

	category    string
	recordingID string
}

func New(rec Recorder, store PathResolver) *Session {
	return &Session{
		rec:   rec,
		store: store,
		log:   logrus.WithField("component", "session"),
	}
}

// Start begins a recording destined for the given category and returns the
// fresh recording id. device selects the capture input; empty means the
// system default.
func (s *Session) Start(category, device string) (string, error) {
	if s.IsRecording() {
		return "", ErrAlreadyRecording
	}

	id := uuid.NewString()

	// Engine defaults for rate and channel count.
	if err := s.rec.StartRecording(device, 0, 0); err != nil {
		return "", err
	}

	s.category = category
	s.recordingID = id

	s.log.WithFields(logrus.Fields{
		"recording_id": id,
		"category":     category,
	}).Debug("recording started")

	return id, nil
}

// Stop finishes the recording and returns the descriptor for the new clip.
// The output filename is unique and filesystem-safe; its location comes
// from the path resolver under the category chosen at Start.
func (s *Session) Stop() (*Clip, error) {
	if !s.IsRecording() {
		return nil, ErrNotRecording
	}

	filename := fmt.Sprintf("rec_%x.wav", uuid.New())
	outputPath, err := s.store.SoundPath(s.category, filename)
	if err != nil {
		return nil, err
	}

	if _, err := s.rec.StopRecording(outputPath); err != nil {
		// The engine consumes the stream before it can fail, so there is
		// nothing left to retry against.
		s.category = ""
		s.recordingID = ""
		return nil, err
	}

	name := "Recording"
	if len(s.recordingID) >= 8 {
		name = fmt.Sprintf("Recording %s", s.recordingID[:8])
	}

	clip := &Clip{
		Name:     name,
		Path:     outputPath,
		Category: s.category,
	}

	s.category = ""
	s.recordingID = ""

	s.log.WithField("path", clip.Path).Debug("recording finished")

	return clip, nil
}

// IsRecording reports whether a recording is in flight.
func (s *Session) IsRecording() bool {
	return s.rec.IsRecording()
}

// RecordingID returns the id of the in-flight recording, or "" when idle.
func (s *Session) RecordingID() string {
	return s.recordingID
}
