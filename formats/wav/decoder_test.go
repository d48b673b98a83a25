// SPDX-License-Identifier: EPL-2.0

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
	gowav "github.com/go-audio/wav"
)

type fakeWavReader struct {
	format  *goaudio.Format
	samples []int
	pos     int
}

func (f *fakeWavReader) Format() *goaudio.Format { return f.format }

func (f *fakeWavReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n := copy(buf.Data, f.samples[f.pos:])
	f.pos += n
	return n, nil
}

func testSource(bitDepth int, samples []int) *source {
	return &source{
		dec: &fakeWavReader{
			format:  &goaudio.Format{NumChannels: 1, SampleRate: 44100},
			samples: samples,
		},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   bitDepth,
	}
}

func TestSource_Normalizes16Bit(t *testing.T) {
	t.Parallel()

	src := testSource(16, []int{16384, -16384, 0, 32767})
	dst := make([]float32, 4)

	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float32{0.5, -0.5, 0, 32767.0 / 32768}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_Treats8BitAsUnsigned(t *testing.T) {
	t.Parallel()

	src := testSource(8, []int{128, 255, 0})
	dst := make([]float32, 3)

	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float32{0, 127.0 / 128, -1}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ShortReadSignalsEOF(t *testing.T) {
	t.Parallel()

	src := testSource(16, []int{100, 200})
	dst := make([]float32, 8)

	n, err := src.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (2, EOF)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after exhaustion = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not riff data")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode(garbage) error = %v, want ErrNotWavFile", err)
	}
}

func TestDecode_Roundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.wav")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	enc := gowav.NewEncoder(out, 44100, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Data:           []int{0, 16384, -16384, 32767},
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 44100},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("file Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	src, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 || src.Channels() != 1 {
		t.Errorf("source = %d Hz %d ch, want 44100 Hz mono", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestDecode_NonSeekableInput(t *testing.T) {
	t.Parallel()

	// A plain reader (no Seek) forces the buffering path.
	_, err := Decoder{}.Decode(io.LimitReader(bytes.NewReader([]byte("nope")), 4))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode(non-seekable garbage) error = %v, want ErrNotWavFile", err)
	}
}
