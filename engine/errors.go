// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrNotLoaded        = errors.New("clip not loaded")
	ErrInvalidVolume    = errors.New("volume must be in [0, 1]")
	ErrAlreadyRecording = errors.New("recording already active")
	ErrNotRecording     = errors.New("no recording active")
	ErrEmptyRecording   = errors.New("no audio data recorded")
	ErrDevice           = errors.New("audio device failure")
	ErrNoDevice         = errors.New("no matching input device")
	ErrEngineClosed     = errors.New("engine is closed")
)
