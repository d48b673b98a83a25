// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"math"
	"testing"
)

func TestPeakDeviation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		buf  []byte
		want float64
	}{
		{"empty", nil, 0},
		{"silence", []byte{128, 128, 128}, 0},
		{"full positive", []byte{128, 255}, 1},
		{"full negative", []byte{1, 128}, 1},
		{"half", []byte{128, 128 + 64}, 64.0 / 127},
	}

	for _, tc := range cases {
		got := peakDeviation(tc.buf)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: peakDeviation() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRMSDeviation(t *testing.T) {
	t.Parallel()

	if got := rmsDeviation(nil); got != 0 {
		t.Errorf("rmsDeviation(nil) = %v, want 0", got)
	}

	// Constant full-scale deviation has RMS 1.
	if got := rmsDeviation([]byte{255, 255, 255}); math.Abs(got-1) > 1e-9 {
		t.Errorf("rmsDeviation(full) = %v, want 1", got)
	}

	// Half the samples at full scale, half silent: RMS = 1/sqrt(2).
	got := rmsDeviation([]byte{255, 128})
	want := 1 / math.Sqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("rmsDeviation(mixed) = %v, want %v", got, want)
	}
}

func TestRMSSmallerThanPeakForTransients(t *testing.T) {
	t.Parallel()

	// A single spike in a quiet buffer: peak reacts fully, RMS barely.
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = 128
	}
	buf[10] = 255

	if p, r := peakDeviation(buf), rmsDeviation(buf); r >= p {
		t.Errorf("rms = %v, peak = %v; want rms < peak", r, p)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Mode
	}{
		{"peak", ModePeak},
		{"", ModePeak},
		{"rms", ModeRMS},
		{"adaptive", ModeAdaptive},
	}

	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if err != nil {
			t.Errorf("ParseMode(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseMode("loudness"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(unknown) error = %v, want ErrUnknownMode", err)
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	for mode, want := range map[Mode]string{
		ModePeak:     "peak",
		ModeRMS:      "rms",
		ModeAdaptive: "adaptive",
	} {
		if got := mode.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestMaxTracker_FullScalePassesThrough(t *testing.T) {
	t.Parallel()

	tr := newMaxTracker(DefaultAdaptiveDecay)
	if got := tr.observe(1.0); math.Abs(got-1) > 1e-9 {
		t.Errorf("observe(1) = %v, want 1", got)
	}
}

func TestMaxTracker_QuietRecoversAfterLoud(t *testing.T) {
	t.Parallel()

	tr := newMaxTracker(DefaultAdaptiveDecay)
	tr.observe(1.0)

	// A quiet passage after a loud transient: the tracked maximum decays,
	// so the scaled amplitude climbs back toward full range instead of
	// staying invisible.
	prev := tr.observe(0.1)
	grew := false
	for iter := 0; iter < 2000; iter++ {
		cur := tr.observe(0.1)
		if cur < prev-1e-9 {
			t.Fatalf("scaled amplitude decreased from %v to %v", prev, cur)
		}
		if cur > prev {
			grew = true
		}
		prev = cur
	}
	if !grew {
		t.Error("scaled amplitude never recovered after the loud transient")
	}
	if math.Abs(prev-1) > 1e-9 {
		t.Errorf("scaled amplitude = %v after long quiet passage, want 1", prev)
	}
}

func TestMaxTracker_SilenceIsDefined(t *testing.T) {
	t.Parallel()

	tr := newMaxTracker(DefaultAdaptiveDecay)
	for iter := 0; iter < 10000; iter++ {
		if got := tr.observe(0); got != 0 {
			t.Fatalf("observe(0) = %v, want 0", got)
		}
	}
}
