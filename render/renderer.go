// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"

	"github.com/ik5/wavescope/internal/metrics"
)

// State of one renderer instance.
type State int

const (
	// StateIdle: no active source. Entering it clears the entire history.
	StateIdle State = iota
	// StateLive: source active, history advancing.
	StateLive
	// StatePaused: source active, rendering frozen at the current history.
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLive:
		return "live"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DataPoint is one committed history bin, both fields in percent of the
// drawable height.
type DataPoint struct {
	StartY    float64
	BarHeight float64
}

// Renderer consumes one visualization buffer per animation tick and draws a
// left-scrolling bar chart with a bounded history and a live leading bar.
//
// A Renderer belongs to exactly one render loop: its counters and history
// must not be shared across concurrently rendered waveforms, and all
// methods must be called from the same goroutine. Buffers arriving from an
// audio thread go through a waveform.Latest slot first.
type Renderer struct {
	style Style

	// picks is the committed history, newest first. Its length is capped
	// at drawable width / bar unit; the oldest entry falls off the tail.
	picks []DataPoint

	// scroll accumulates sub-unit steps per tick and gates when the next
	// bin commits.
	scroll int

	state   State
	paused  bool
	tracker maxTracker

	// latest keeps a copy of the most recent non-empty buffer for
	// AudioData.
	latest []byte

	onError func(error)
}

// New returns a renderer using style (zero fields defaulted, gain clamped).
func New(style Style) *Renderer {
	style = style.sanitized()
	return &Renderer{
		style:   style,
		state:   StateIdle,
		tracker: newMaxTracker(style.AdaptiveDecay),
	}
}

// OnError installs a callback for draw failures recovered inside Tick.
// The renderer always continues on the next tick.
func (r *Renderer) OnError(fn func(error)) {
	r.onError = fn
}

// Pause freezes rendering at the current history. The source may keep
// producing buffers; they update AudioData but not the picture.
func (r *Renderer) Pause() { r.paused = true }

// Resume lifts a pause.
func (r *Renderer) Resume() { r.paused = false }

// IsPaused reports whether the renderer is paused.
func (r *Renderer) IsPaused() bool { return r.paused }

// State returns the current renderer state.
func (r *Renderer) State() State { return r.state }

// Clear drops the entire history and scroll state, as if the source had
// just gone inactive.
func (r *Renderer) Clear() {
	r.reset()
}

// AudioData returns a copy of the most recent non-empty visualization
// buffer, or nil if none arrived yet.
func (r *Renderer) AudioData() []byte {
	if len(r.latest) == 0 {
		return nil
	}
	out := make([]byte, len(r.latest))
	copy(out, r.latest)
	return out
}

// Picks returns the committed history length. Mostly useful for tests and
// debug overlays.
func (r *Renderer) Picks() int { return len(r.picks) }

// Tick renders one animation frame.
//
// buf is the visualization buffer for this tick; an empty or nil buffer
// means the source is inactive, which clears the history and draws a flat
// center line. No failure escapes a tick: draw panics are recovered,
// reported through OnError, and rendering resumes on the next call.
func (r *Renderer) Tick(buf []byte, s Surface) {
	defer func() {
		if v := recover(); v != nil {
			metrics.RenderFailures.Inc()
			if r.onError != nil {
				r.onError(fmt.Errorf("render tick: %v", v))
			}
		}
	}()

	metrics.RenderTicks.Inc()

	if len(buf) == 0 {
		// Source inactive: full reset, not a freeze.
		if r.state != StateIdle {
			r.reset()
			metrics.HistoryResets.Inc()
		}
		r.state = StateIdle
		r.draw(s, 0, false)
		return
	}

	r.latest = append(r.latest[:0], buf...)

	if r.paused {
		r.state = StatePaused
		r.draw(s, 0, false)
		return
	}
	r.state = StateLive

	amp := r.amplitude(buf)

	unit := r.style.barUnit()
	r.scroll += r.style.Speed
	if r.scroll >= unit {
		r.scroll -= unit
		r.commit(amp, s)
	}

	r.draw(s, amp, r.style.AnimateCurrentPick)
}

// amplitude collapses buf into one gain-scaled value in [0, 1] using the
// configured mode.
func (r *Renderer) amplitude(buf []byte) float64 {
	var amp float64
	switch r.style.Mode {
	case ModeRMS:
		amp = rmsDeviation(buf)
	case ModeAdaptive:
		amp = r.tracker.observe(peakDeviation(buf))
	default:
		amp = peakDeviation(buf)
	}

	amp *= r.style.Gain
	if amp > 1 {
		amp = 1
	}
	return amp
}

// commit pushes a new history bin to the front and evicts from the tail
// once the drawable-width cap is exceeded.
func (r *Renderer) commit(amp float64, s Surface) {
	h := amp * 100
	p := DataPoint{BarHeight: h}
	if r.style.Fullscreen {
		p.StartY = 100 - h
	} else {
		p.StartY = (100 - h) / 2
	}

	r.picks = append(r.picks, DataPoint{})
	copy(r.picks[1:], r.picks)
	r.picks[0] = p

	limit := r.historyCap(s)
	if len(r.picks) > limit {
		r.picks = r.picks[:limit]
	}
}

func (r *Renderer) historyCap(s Surface) int {
	w, _ := s.Size()
	c := (w - 2*r.style.BorderWidth) / r.style.barUnit()
	if c < 1 {
		c = 1
	}
	return c
}

func (r *Renderer) reset() {
	r.picks = r.picks[:0]
	r.scroll = 0
	r.tracker.reset()
}

// draw repaints the whole surface: background, optional border, committed
// history bars from the leading edge leftward, and the live bar when
// enabled.
func (r *Renderer) draw(s Surface, liveAmp float64, live bool) {
	w, h := s.Size()
	st := r.style

	s.Fill(st.SecondaryColor)

	if st.BorderWidth > 0 && st.BorderColor != nil {
		bw := st.BorderWidth
		s.FillRect(0, 0, w, bw, 0, st.BorderColor)
		s.FillRect(0, h-bw, w, bw, 0, st.BorderColor)
		s.FillRect(0, 0, bw, h, 0, st.BorderColor)
		s.FillRect(w-bw, 0, bw, h, 0, st.BorderColor)
	}

	inX := st.BorderWidth
	inY := st.BorderWidth
	inW := w - 2*st.BorderWidth
	inH := h - 2*st.BorderWidth
	if inW <= 0 || inH <= 0 {
		return
	}

	unit := st.barUnit()
	lead := inX + inW - st.BarWidth // left edge of the leading (live) slot

	if len(r.picks) == 0 && !live {
		// Flat center line for idle or empty input.
		s.FillRect(inX, inY+inH/2, inW, 1, 0, st.PrimaryColor)
		return
	}

	for i, p := range r.picks {
		x := lead - (i+1)*unit
		if x+st.BarWidth <= inX {
			break
		}
		r.drawBar(s, x, inY, inH, p)
	}

	if live {
		p := DataPoint{BarHeight: liveAmp * 100}
		if st.Fullscreen {
			p.StartY = 100 - p.BarHeight
		} else {
			p.StartY = (100 - p.BarHeight) / 2
		}
		r.drawBar(s, lead, inY, inH, p)
	}
}

func (r *Renderer) drawBar(s Surface, x, top, height int, p DataPoint) {
	bh := int(p.BarHeight / 100 * float64(height))
	if bh < 1 {
		bh = 1 // silence still shows a 1px tick on the center line
	}
	y := top + int(p.StartY/100*float64(height))
	if y+bh > top+height {
		y = top + height - bh
	}
	s.FillRect(x, y, r.style.BarWidth, bh, r.style.CornerRadius, r.style.PrimaryColor)
}
