// SPDX-License-Identifier: EPL-2.0

// Package trim extracts time sub-ranges from audio files and answers
// metadata queries. Trimming is non-destructive: the result is always a new
// file, the input is never modified.
package trim

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-soundpad/soundpad"
)

var (
	ErrInvalidRange = errors.New("invalid trim range")
	ErrStartPastEnd = errors.New("trim start beyond audio end")
)

// Trim writes the half-open time range [start, end) seconds of inputPath to
// outputPath at the original sample rate and returns outputPath.
//
// start must be >= 0 and end > start, and the range must cover at least one
// frame after rounding to the file's sample rate (ErrInvalidRange otherwise).
// A start at or past the end of the audio fails with ErrStartPastEnd; an end
// past the end of the audio is silently clamped.
func Trim(inputPath, outputPath string, start, end float64) (string, error) {
	if start < 0 {
		return "", fmt.Errorf("%w: start %v is negative", ErrInvalidRange, start)
	}
	if end <= start {
		return "", fmt.Errorf("%w: end %v not after start %v", ErrInvalidRange, end, start)
	}

	buf, err := soundpad.ReadFile(inputPath)
	if err != nil {
		return "", err
	}

	frames := buf.Frames()
	startFrame := int(math.Round(start * float64(buf.Rate)))
	endFrame := int(math.Round(end * float64(buf.Rate)))

	if startFrame >= frames {
		return "", fmt.Errorf("%w: start %vs, duration %.3fs", ErrStartPastEnd, start, buf.Seconds())
	}
	if endFrame > frames {
		endFrame = frames
	}
	// Sub-frame ranges round down to nothing; a zero-frame file is useless.
	if endFrame <= startFrame {
		return "", fmt.Errorf("%w: [%v, %v) covers no frames at %d Hz", ErrInvalidRange, start, end, buf.Rate)
	}

	trimmed := *buf
	trimmed.Data = buf.Data[startFrame*buf.Channels : endFrame*buf.Channels]

	if err := soundpad.WriteFile(outputPath, &trimmed); err != nil {
		return "", err
	}

	return outputPath, nil
}

// FileInfo describes an audio file's decoded shape.
type FileInfo struct {
	Seconds    float64
	SampleRate int
	Channels   int
	Format     string
}

// Duration returns the file's duration in seconds.
func Duration(path string) (float64, error) {
	buf, err := soundpad.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return buf.Seconds(), nil
}

// Info returns duration, sample rate, channel count and format name for the
// file at path.
func Info(path string) (FileInfo, error) {
	buf, err := soundpad.ReadFile(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Seconds:    buf.Seconds(),
		SampleRate: buf.Rate,
		Channels:   buf.Channels,
		Format:     strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")),
	}, nil
}
