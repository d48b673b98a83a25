// SPDX-License-Identifier: EPL-2.0

package sources_test

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/wavescope/internal/audiotest"
	"github.com/ik5/wavescope/sources"
)

func TestNewPCM16Pump_RejectsBadChunk(t *testing.T) {
	t.Parallel()

	_, err := sources.NewPCM16Pump(audiotest.NewSilentSource(8000, 1, 8), 0)
	if !errors.Is(err, sources.ErrFrameSize) {
		t.Errorf("NewPCM16Pump(chunk=0) error = %v, want ErrFrameSize", err)
	}
}

func TestNewNormalizedPump_RejectsBadSizes(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 8)
	if _, err := sources.NewNormalizedPump(src, 0, 64); !errors.Is(err, sources.ErrFrameSize) {
		t.Errorf("NewNormalizedPump(chunk=0) error = %v, want ErrFrameSize", err)
	}
	if _, err := sources.NewNormalizedPump(src, 8, 0); !errors.Is(err, sources.ErrFrameSize) {
		t.Errorf("NewNormalizedPump(buffer=0) error = %v, want ErrFrameSize", err)
	}
}

func TestPCM16Pump_EncodesChunks(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 10, 0.5)
	pump, err := sources.NewPCM16Pump(src, 4)
	if err != nil {
		t.Fatalf("NewPCM16Pump() error = %v", err)
	}

	frame, err := pump.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if frame.Normalized() {
		t.Fatal("Next() returned a normalized frame, want PCM")
	}
	if frame.BitsPerSample() != 16 || frame.Channels() != 1 {
		t.Errorf("frame = %d-bit %d-channel, want 16-bit mono", frame.BitsPerSample(), frame.Channels())
	}

	data := frame.Data()
	if len(data) != 8 {
		t.Fatalf("len(Data()) = %d, want 8 bytes for 4 samples", len(data))
	}
	half := float32(0.5)
	want := int16(half * 32767)
	for i := 0; i < len(data); i += 2 {
		if got := int16(binary.LittleEndian.Uint16(data[i:])); got != want {
			t.Fatalf("sample %d = %d, want %d", i/2, got, want)
		}
	}
}

func TestPCM16Pump_PartialFinalChunkThenEOF(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 10, 0.25)
	pump, err := sources.NewPCM16Pump(src, 4)
	if err != nil {
		t.Fatalf("NewPCM16Pump() error = %v", err)
	}

	lengths := []int{8, 8, 4} // 4 + 4 + 2 frames of 2 bytes each
	for i, want := range lengths {
		frame, err := pump.Next()
		if err != nil {
			t.Fatalf("Next() %d error = %v", i, err)
		}
		if got := len(frame.Data()); got != want {
			t.Errorf("chunk %d: len(Data()) = %d, want %d", i, got, want)
		}
	}

	if _, err := pump.Next(); err != io.EOF {
		t.Errorf("Next() after exhaustion error = %v, want io.EOF", err)
	}
}

func TestPCM16Pump_ClampsOutOfRangeSamples(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 1, 2, func(frame, _ int) float32 {
		if frame == 0 {
			return 2.0
		}
		return -2.0
	})
	pump, err := sources.NewPCM16Pump(src, 2)
	if err != nil {
		t.Fatalf("NewPCM16Pump() error = %v", err)
	}

	frame, err := pump.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	data := frame.Data()
	if got := int16(binary.LittleEndian.Uint16(data)); got != 32767 {
		t.Errorf("clamped positive = %d, want 32767", got)
	}
	if got := int16(binary.LittleEndian.Uint16(data[2:])); got != -32767 {
		t.Errorf("clamped negative = %d, want -32767", got)
	}
}

func TestNormalizedPump_MixesAndResizes(t *testing.T) {
	t.Parallel()

	// Stereo constant 0.6 mixes to mono 0.6 and resamples flat.
	src := audiotest.NewConstantSource(8000, 2, 16, 0.6)
	pump, err := sources.NewNormalizedPump(src, 8, 32)
	if err != nil {
		t.Fatalf("NewNormalizedPump() error = %v", err)
	}

	frame, err := pump.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if !frame.Normalized() {
		t.Fatal("Next() returned a PCM frame, want normalized")
	}

	samples := frame.Samples()
	if len(samples) != 32 {
		t.Fatalf("len(Samples()) = %d, want the target buffer size 32", len(samples))
	}
	for i, v := range samples {
		if math.Abs(float64(v)-0.6) > 1e-6 {
			t.Fatalf("samples[%d] = %v, want 0.6", i, v)
		}
	}
}

func TestNormalizedPump_EOF(t *testing.T) {
	t.Parallel()

	pump, err := sources.NewNormalizedPump(audiotest.NewSilentSource(8000, 1, 4), 4, 16)
	if err != nil {
		t.Fatalf("NewNormalizedPump() error = %v", err)
	}

	if _, err := pump.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if _, err := pump.Next(); err != io.EOF {
		t.Errorf("Next() after exhaustion error = %v, want io.EOF", err)
	}
}

func TestPump_CloseClosesSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 4)
	pump, err := sources.NewPCM16Pump(src, 4)
	if err != nil {
		t.Fatalf("NewPCM16Pump() error = %v", err)
	}

	if err := pump.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("underlying source not closed")
	}
}
