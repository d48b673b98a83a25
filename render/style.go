// SPDX-License-Identifier: EPL-2.0

package render

import "image/color"

// Gain bounds. Out-of-range gains are clamped, unlike config values:
// style inputs are pass-through knobs, not session contracts.
const (
	MinGain = 0.1
	MaxGain = 10.0
)

// DefaultAdaptiveDecay is the per-tick decay of the adaptive running
// maximum. 0.995 halves the tracked peak in roughly 140 ticks (~2.3s at
// 60 fps), slow enough to ride out phrase-level dynamics.
const DefaultAdaptiveDecay = 0.995

// Style bundles the renderer's visual knobs. The zero value is unusable;
// start from DefaultStyle and override.
type Style struct {
	// BarWidth and Gap are in surface pixels. One committed pick occupies
	// BarWidth+Gap horizontal pixels (the "bar unit").
	BarWidth int
	Gap      int
	// CornerRadius rounds the bar rectangles; 0 draws square bars.
	CornerRadius int
	// Speed is the animation pacing divisor: how many sub-unit steps the
	// scroll advances per tick. A new pick is committed each time the
	// accumulated steps cross one bar unit, so Speed throttles how often
	// the scroll advances relative to the raw tick rate.
	Speed int
	// Gain multiplies the computed amplitude, clamped to [MinGain, MaxGain].
	Gain float64
	// Mode selects the amplitude calculation.
	Mode Mode
	// AdaptiveDecay is the per-tick decay factor for ModeAdaptive.
	// Zero means DefaultAdaptiveDecay.
	AdaptiveDecay float64

	// PrimaryColor paints bars, SecondaryColor the background.
	PrimaryColor   color.Color
	SecondaryColor color.Color
	// BorderWidth > 0 draws a border in BorderColor inside the surface edge.
	BorderWidth int
	BorderColor color.Color

	// Fullscreen anchors bars to the bottom edge at full-height scale
	// instead of centering them vertically.
	Fullscreen bool
	// AnimateCurrentPick draws the live, undamped leading bar ahead of the
	// committed history while not paused.
	AnimateCurrentPick bool
}

// DefaultStyle mirrors the defaults of the original toolkit: thin centered
// bars, peak mode, live bar enabled.
func DefaultStyle() Style {
	return Style{
		BarWidth:           2,
		Gap:                1,
		Speed:              3,
		Gain:               1.0,
		Mode:               ModePeak,
		AdaptiveDecay:      DefaultAdaptiveDecay,
		PrimaryColor:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		SecondaryColor:     color.RGBA{A: 0xff},
		AnimateCurrentPick: true,
	}
}

// sanitized returns a copy with zero values defaulted and the gain clamped.
func (s Style) sanitized() Style {
	if s.BarWidth < 1 {
		s.BarWidth = 1
	}
	if s.Gap < 0 {
		s.Gap = 0
	}
	if s.Speed < 1 {
		s.Speed = 1
	}
	if s.Gain < MinGain {
		s.Gain = MinGain
	} else if s.Gain > MaxGain {
		s.Gain = MaxGain
	}
	if s.AdaptiveDecay <= 0 || s.AdaptiveDecay >= 1 {
		s.AdaptiveDecay = DefaultAdaptiveDecay
	}
	if s.PrimaryColor == nil {
		s.PrimaryColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	if s.SecondaryColor == nil {
		s.SecondaryColor = color.RGBA{A: 0xff}
	}
	return s
}

// barUnit is the horizontal footprint of one committed pick.
func (s Style) barUnit() int {
	return s.BarWidth + s.Gap
}
