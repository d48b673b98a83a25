// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"math"

	"github.com/ik5/wavescope/waveform"
)

// Mode selects how a visualization buffer is collapsed into one amplitude
// value per tick.
type Mode int

const (
	// ModePeak uses the largest absolute deviation from the center value.
	// Best at preserving transients; the default.
	ModePeak Mode = iota
	// ModeRMS uses the root-mean-square of deviations, which tracks
	// perceived loudness and reacts less to single spikes.
	ModeRMS
	// ModeAdaptive divides the peak by a decaying running maximum, so
	// quiet and loud passages land in a comparable visual range.
	ModeAdaptive
)

func (m Mode) String() string {
	switch m {
	case ModePeak:
		return "peak"
	case ModeRMS:
		return "rms"
	case ModeAdaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps the textual mode names ("peak", "rms", "adaptive") back
// to a Mode. Used by settings files.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "peak", "":
		return ModePeak, nil
	case "rms":
		return ModeRMS, nil
	case "adaptive":
		return ModeAdaptive, nil
	default:
		return ModePeak, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// peakDeviation returns the largest absolute deviation from Center,
// normalized to [0, 1]. An empty buffer reads as silence.
func peakDeviation(buf []byte) float64 {
	peak := 0
	for _, b := range buf {
		d := int(b) - waveform.Center
		if d < 0 {
			d = -d
		}
		if d > peak {
			peak = d
		}
	}
	return float64(peak) / 127
}

// rmsDeviation returns the root-mean-square deviation from Center,
// normalized to [0, 1].
func rmsDeviation(buf []byte) float64 {
	if len(buf) == 0 {
		return 0
	}

	var sum float64
	for _, b := range buf {
		d := float64(int(b) - waveform.Center)
		sum += d * d
	}
	return math.Sqrt(sum/float64(len(buf))) / 127
}

// trackerFloor keeps the adaptive divisor defined through silence.
const trackerFloor = 0.001

// maxTracker is an exponential moving maximum: each tick the tracked value
// decays by a constant factor and is bumped back up whenever the current
// amplitude exceeds it. Dividing by the tracked value auto-scales quiet
// passages without letting one loud transient blank out everything after it.
type maxTracker struct {
	track float64
	decay float64
}

func newMaxTracker(decay float64) maxTracker {
	return maxTracker{track: trackerFloor, decay: decay}
}

// observe folds amp into the tracker and returns the auto-scaled amplitude
// in [0, 1].
func (t *maxTracker) observe(amp float64) float64 {
	t.track *= t.decay
	if amp > t.track {
		t.track = amp
	}
	if t.track < trackerFloor {
		t.track = trackerFloor
	}

	scaled := amp / t.track
	if scaled > 1 {
		scaled = 1
	}
	return scaled
}

func (t *maxTracker) reset() {
	t.track = trackerFloor
}
