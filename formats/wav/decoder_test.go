package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockWavReader feeds canned PCM ints to the source wrapper.
type mockWavReader struct {
	data []int
	pos  int
	err  error
}

func (m *mockWavReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.pos >= len(m.data) {
		return 0, nil
	}
	n := copy(buf.Data, m.data[m.pos:])
	m.pos += n
	return n, nil
}

// encodeTempWav writes samples to a throwaway WAV file and returns its path.
func encodeTempWav(t *testing.T, sampleRate, channels int, samples []float32) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating temp wav: %v", err)
	}
	if err := Encode(f, sampleRate, channels, samples); err != nil {
		f.Close()
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing temp wav: %v", err)
	}
	return path
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 2000)
	for i := range 1000 {
		v := float32(math.Sin(2 * math.Pi * 440 * float64(i) / 8000))
		samples[i*2] = v
		samples[i*2+1] = -v
	}
	path := encodeTempWav(t, 8000, 2, samples)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening wav: %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	var decoded []float32
	buf := make([]float32, 512)
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			decoded = append(decoded, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(decoded) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(decoded), len(samples))
	}

	// 16-bit quantization plus the 32767 scale factor allow a couple
	// of LSBs of error
	const tolerance = 2.5 / 32768.0
	for i := range samples {
		if math.Abs(float64(decoded[i]-samples[i])) > tolerance {
			t.Fatalf("decoded[%d] = %f, want %f (±%f)", i, decoded[i], samples[i], tolerance)
		}
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	path := encodeTempWav(t, 44100, 1, []float32{0.1, 0.2, 0.3, 0.4})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading wav bytes: %v", err)
	}

	// Hide the Seeker so Decode takes the buffering path
	r := struct{ io.Reader }{bytes.NewReader(data)}

	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 || src.Channels() != 1 {
		t.Errorf("format = (%d, %d), want (44100, 1)", src.SampleRate(), src.Channels())
	}
}

func TestDecoder_NotWavFile(t *testing.T) {
	t.Parallel()

	garbage := bytes.NewReader([]byte("this is definitely not a RIFF container"))
	_, err := Decoder{}.Decode(garbage)
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() on empty input succeeded, want error")
	}
}

func TestSource_Normalization16Bit(t *testing.T) {
	t.Parallel()

	mock := &mockWavReader{data: []int{32767, -32768, 0, 16384}}
	src := &source{dec: mock, sampleRate: 44100, channels: 1, bitDepth: 16}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float32{32767.0 / 32768.0, -1.0, 0.0, 0.5}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], want[i])
		}
	}
}

func TestSource_Normalization8Bit(t *testing.T) {
	t.Parallel()

	mock := &mockWavReader{data: []int{127, -128, 64}}
	src := &source{dec: mock, sampleRate: 8000, channels: 1, bitDepth: 8}

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("ReadSamples() = %d, want 3", n)
	}

	want := []float32{127.0 / 128.0, -1.0, 0.5}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], want[i])
		}
	}
}

func TestSource_ShortReadSignalsEOF(t *testing.T) {
	t.Parallel()

	mock := &mockWavReader{data: []int{100, 200}}
	src := &source{dec: mock, sampleRate: 8000, channels: 1, bitDepth: 16}

	dst := make([]float32, 10)
	n, err := src.ReadSamples(dst)
	if n != 2 {
		t.Fatalf("ReadSamples() = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_DrainedReaderEOF(t *testing.T) {
	t.Parallel()

	mock := &mockWavReader{}
	src := &source{dec: mock, sampleRate: 8000, channels: 1, bitDepth: 16}

	n, err := src.ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReaderError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("corrupt chunk")
	mock := &mockWavReader{err: wantErr}
	src := &source{dec: mock, sampleRate: 8000, channels: 1, bitDepth: 16}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, wantErr) {
		t.Errorf("ReadSamples() error = %v, want %v", err, wantErr)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	mock := &mockWavReader{data: []int{1, 2, 3}}
	src := &source{dec: mock, sampleRate: 8000, channels: 1, bitDepth: 16}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
