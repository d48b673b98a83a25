// SPDX-License-Identifier: EPL-2.0

package settings

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/wavescope/render"
	"github.com/ik5/wavescope/waveform"
)

// Settings is the on-disk configuration of a wavescope host: the audio
// session parameters plus the renderer's visual knobs.
type Settings struct {
	Audio AudioSettings `yaml:"audio"`
	Style StyleSettings `yaml:"style"`
}

// AudioSettings mirrors waveform.Config.
type AudioSettings struct {
	BufferSize        int `yaml:"buffer_size"`
	SkipInitialFrames int `yaml:"skip_initial_frames"`
	BitsPerSample     int `yaml:"bits_per_sample"`
	Channels          int `yaml:"channels"`
}

// StyleSettings mirrors render.Style with colors as hex strings and the
// amplitude mode by name ("peak", "rms", "adaptive").
type StyleSettings struct {
	BarWidth           int     `yaml:"bar_width"`
	Gap                int     `yaml:"gap"`
	CornerRadius       int     `yaml:"corner_radius"`
	Speed              int     `yaml:"speed"`
	Gain               float64 `yaml:"gain"`
	Mode               string  `yaml:"mode"`
	AdaptiveDecay      float64 `yaml:"adaptive_decay"`
	PrimaryColor       string  `yaml:"primary_color"`
	SecondaryColor     string  `yaml:"secondary_color"`
	Fullscreen         bool    `yaml:"fullscreen"`
	AnimateCurrentPick bool    `yaml:"animate_current_pick"`
}

// Default returns settings matching waveform.DefaultConfig and
// render.DefaultStyle.
func Default() Settings {
	cfg := waveform.DefaultConfig()
	return Settings{
		Audio: AudioSettings{
			BufferSize:        cfg.BufferSize,
			SkipInitialFrames: cfg.SkipInitialFrames,
			BitsPerSample:     cfg.BitsPerSample,
			Channels:          cfg.Channels,
		},
		Style: StyleSettings{
			BarWidth:           2,
			Gap:                1,
			Speed:              3,
			Gain:               1.0,
			Mode:               "peak",
			PrimaryColor:       "#ffffff",
			SecondaryColor:     "#000000",
			AnimateCurrentPick: true,
		},
	}
}

// Load reads and validates a settings file. Fields absent from the file
// keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse unmarshals and validates raw YAML settings.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return &s, nil
}

// Validate rejects out-of-range audio parameters and unparseable style
// values. Style ranges themselves (gain, widths) are clamped later by the
// renderer, matching its pass-through contract.
func (s *Settings) Validate() error {
	if err := s.AudioConfig().Validate(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	if _, err := render.ParseMode(s.Style.Mode); err != nil {
		return fmt.Errorf("style: %w", err)
	}

	if _, err := parseHexColor(s.Style.PrimaryColor); err != nil {
		return fmt.Errorf("style primary_color: %w", err)
	}
	if _, err := parseHexColor(s.Style.SecondaryColor); err != nil {
		return fmt.Errorf("style secondary_color: %w", err)
	}

	return nil
}

// AudioConfig converts the audio section into a waveform.Config.
func (s *Settings) AudioConfig() waveform.Config {
	return waveform.Config{
		BufferSize:        s.Audio.BufferSize,
		SkipInitialFrames: s.Audio.SkipInitialFrames,
		BitsPerSample:     s.Audio.BitsPerSample,
		Channels:          s.Audio.Channels,
	}
}

// RenderStyle converts the style section into a render.Style. Call only
// after Validate (or Load/Parse, which validate).
func (s *Settings) RenderStyle() (render.Style, error) {
	mode, err := render.ParseMode(s.Style.Mode)
	if err != nil {
		return render.Style{}, err
	}

	primary, err := parseHexColor(s.Style.PrimaryColor)
	if err != nil {
		return render.Style{}, fmt.Errorf("primary_color: %w", err)
	}
	secondary, err := parseHexColor(s.Style.SecondaryColor)
	if err != nil {
		return render.Style{}, fmt.Errorf("secondary_color: %w", err)
	}

	return render.Style{
		BarWidth:           s.Style.BarWidth,
		Gap:                s.Style.Gap,
		CornerRadius:       s.Style.CornerRadius,
		Speed:              s.Style.Speed,
		Gain:               s.Style.Gain,
		Mode:               mode,
		AdaptiveDecay:      s.Style.AdaptiveDecay,
		PrimaryColor:       primary,
		SecondaryColor:     secondary,
		Fullscreen:         s.Style.Fullscreen,
		AnimateCurrentPick: s.Style.AnimateCurrentPick,
	}, nil
}

// parseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}

	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	if len(s) == 0 || s[0] != '#' {
		return c, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	switch len(s) {
	case 4: // #rgb
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			v, ok := hexVal(s[1+i])
			if !ok {
				return c, fmt.Errorf("%w: %q", ErrBadColor, s)
			}
			*dst = v*16 + v
		}
	case 7: // #rrggbb
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			hi, ok1 := hexVal(s[1+2*i])
			lo, ok2 := hexVal(s[2+2*i])
			if !ok1 || !ok2 {
				return c, fmt.Errorf("%w: %q", ErrBadColor, s)
			}
			*dst = hi*16 + lo
		}
	default:
		return c, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	return c, nil
}
