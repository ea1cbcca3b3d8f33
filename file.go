// SPDX-License-Identifier: EPL-2.0

package soundpad

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-soundpad/soundpad/audio"
	"github.com/go-soundpad/soundpad/formats/aiff"
	"github.com/go-soundpad/soundpad/formats/mp3"
	"github.com/go-soundpad/soundpad/formats/vorbis"
	"github.com/go-soundpad/soundpad/formats/wav"
)

// ErrUnknownFormat is returned when a path's extension has no registered decoder.
var ErrUnknownFormat = errors.New("unknown audio format")

var registry = audio.NewRegistry()

func init() {
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})
}

// Formats returns the file extensions ReadFile can decode.
func Formats() []string {
	return registry.Extensions()
}

// decoderFor resolves a decoder from the path's extension.
func decoderFor(path string) (audio.Decoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	dec, ok := registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return dec, nil
}

// ReadFile decodes the audio file at path into a Buffer. The format is
// chosen by file extension.
func ReadFile(path string) (*audio.Buffer, error) {
	dec, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// WriteFile encodes buf as a 16-bit PCM WAV file at path. The write goes to
// a temporary file in the same directory which is renamed into place on
// success; on failure the temporary file is removed and the destination is
// left untouched.
func WriteFile(path string, buf *audio.Buffer) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if err := wav.Encode(tmp, buf.Rate, buf.Channels, buf.Data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}
