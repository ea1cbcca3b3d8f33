package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader feeds canned 16-bit PCM ints to the source wrapper.
type mockAiffReader struct {
	sampleRate int
	channels   int
	data       []int
	pos        int
	err        error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: m.sampleRate, NumChannels: m.channels}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
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

func newMockSource(mock *mockAiffReader) *source {
	return &source{
		dec:        mock,
		sampleRate: mock.sampleRate,
		channels:   mock.channels,
	}
}

func TestDecoder_NotAiffFile(t *testing.T) {
	t.Parallel()

	garbage := bytes.NewReader([]byte("this is not a FORM container at all"))
	_, err := Decoder{}.Decode(garbage)
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() on empty input succeeded, want error")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newMockSource(&mockAiffReader{sampleRate: 44100, channels: 2})

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Normalization(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{
		sampleRate: 8000,
		channels:   1,
		data:       []int{32767, -32768, 0, 16384},
	}
	src := newMockSource(mock)

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

func TestSource_ShortReadSignalsEOF(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{sampleRate: 8000, channels: 1, data: []int{10, 20, 30}}
	src := newMockSource(mock)

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 3 {
		t.Fatalf("ReadSamples() = %d, want 3", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_DrainedReaderEOF(t *testing.T) {
	t.Parallel()

	src := newMockSource(&mockAiffReader{sampleRate: 8000, channels: 1})

	n, err := src.ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReaderError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("truncated SSND chunk")
	src := newMockSource(&mockAiffReader{sampleRate: 8000, channels: 1, err: wantErr})

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, wantErr) {
		t.Errorf("ReadSamples() error = %v, want %v", err, wantErr)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newMockSource(&mockAiffReader{sampleRate: 8000, channels: 1, data: []int{1}})

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_StereoInterleaving(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{
		sampleRate: 44100,
		channels:   2,
		data:       []int{1000, 2000, 3000, 4000},
	}
	src := newMockSource(mock)

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	// Interleaving preserved in order
	for i := 1; i < n; i++ {
		if dst[i] <= dst[i-1] {
			t.Fatalf("dst not strictly increasing at %d: %v", i, dst[:n])
		}
	}
}

func TestSource_ChunkedReads(t *testing.T) {
	t.Parallel()

	data := make([]int, 100)
	for i := range data {
		data[i] = i * 100
	}
	src := newMockSource(&mockAiffReader{sampleRate: 8000, channels: 2, data: data})

	var total int
	dst := make([]float32, 8)
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	if total != 100 {
		t.Errorf("read %d samples in total, want 100", total)
	}
}
