// SPDX-License-Identifier: EPL-2.0

package wavescope

import (
	"fmt"
	"image"
	"io"

	"github.com/ik5/wavescope/render"
	"github.com/ik5/wavescope/sources"
	"github.com/ik5/wavescope/waveform"
)

// SnapshotOptions configures Snapshot. Zero values fall back to sensible
// defaults: an 800x160 image, waveform.DefaultConfig, render.DefaultStyle,
// and a chunk size of one visualization frame per ~50ms of audio.
type SnapshotOptions struct {
	Width  int
	Height int
	// Config drives the conversion; zero means waveform.DefaultConfig.
	Config waveform.Config
	// Style drives the drawing; a zero style means render.DefaultStyle.
	Style render.Style
	// ChunkFrames is how many source sample frames feed one tick.
	ChunkFrames int
}

// Snapshot runs an entire source through the conversion pipeline and a
// scrolling renderer, returning the final image. Because the renderer keeps
// a bounded history, the image shows the trailing window of the audio, the
// same way a live view would look at the moment the stream ended.
//
// This is a convenience wrapper; for live rendering drive a
// waveform.Processor and a render.Renderer directly.
func Snapshot(src sources.Source, opts SnapshotOptions) (*image.RGBA, error) {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 160
	}

	cfg := opts.Config
	if cfg == (waveform.Config{}) {
		cfg = waveform.DefaultConfig()
	}

	style := opts.Style
	if style == (render.Style{}) {
		style = render.DefaultStyle()
	}

	chunk := opts.ChunkFrames
	if chunk <= 0 {
		chunk = src.SampleRate() / 20
		if chunk < 256 {
			chunk = 256
		}
	}

	proc, err := waveform.NewProcessor(cfg)
	if err != nil {
		return nil, err
	}

	pump, err := sources.NewNormalizedPump(src, chunk, cfg.BufferSize)
	if err != nil {
		return nil, err
	}

	r := render.New(style)
	surf := render.NewImageSurface(opts.Width, opts.Height)

	for {
		frame, err := pump.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		res, err := proc.Process(frame)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if res == nil {
			continue // skip window
		}

		r.Tick(res.Buffer, surf)
	}

	return surf.Image(), nil
}
