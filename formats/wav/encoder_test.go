// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEncode_Header(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "header.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	if err := Encode(f, 44100, 2, []float32{0.1, 0.2, 0.3, 0.4}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Error("encoded file missing RIFF marker")
	}
	if !bytes.Contains(data[:16], []byte("WAVE")) {
		t.Error("encoded file missing WAVE marker")
	}
}

func TestEncode_InvalidChannels(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	if err := Encode(f, 44100, 0, []float32{0.1}); !errors.Is(err, ErrUnsupportedWavLayout) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedWavLayout", err)
	}
}

func TestEncode_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	if err := Encode(f, 8000, 1, nil); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}

	// Still a valid container, just without frames
	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("reopening file: %v", err)
	}
	defer in.Close()

	src, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Errorf("format = (%d, %d), want (8000, 1)", src.SampleRate(), src.Channels())
	}
}

func TestEncode_Clipping(t *testing.T) {
	t.Parallel()

	// Out-of-range samples clamp instead of wrapping
	path := encodeTempWav(t, 8000, 1, []float32{2.0, -2.0})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening file: %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 2)
	n, _ := src.ReadSamples(dst)
	if n != 2 {
		t.Fatalf("ReadSamples() = %d, want 2", n)
	}
	if dst[0] < 0.99 {
		t.Errorf("positive overdrive decoded as %f, want ≈1.0", dst[0])
	}
	if dst[1] > -0.99 {
		t.Errorf("negative overdrive decoded as %f, want ≈-1.0", dst[1])
	}
}

func TestEncode_LargePayloadChunking(t *testing.T) {
	t.Parallel()

	// More frames than one conversion chunk holds
	samples := make([]float32, 9000*2)
	for i := range samples {
		samples[i] = 0.25
	}
	path := encodeTempWav(t, 44100, 2, samples)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening file: %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var total int
	buf := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err != nil {
			break
		}
	}
	if total != len(samples) {
		t.Errorf("decoded %d samples, want %d", total, len(samples))
	}
}
