// SPDX-License-Identifier: EPL-2.0

// Package wavescope turns raw audio into scrolling waveform visuals.
//
// The pipeline has two halves, with data flowing strictly one direction:
//
//	capture layer -> waveform.Processor -> visualization buffer -> render.Renderer -> pixels
//
// The waveform package converts raw PCM or normalized float frames into
// fixed-length byte buffers centered at 128; the render package consumes
// one buffer per animation tick and maintains a scrolling bar history.
// The sources and formats packages supply audio from decoded files; live
// capture layers plug in by implementing sources.Source or by handing
// frames to a Processor directly.
//
// # Quick start
//
// Render a whole file into an image:
//
//	f, _ := os.Open("take.wav")
//	dec, _ := wavescope.NewDefaultRegistry().Get("wav")
//	src, _ := dec.Decode(f)
//	img, err := wavescope.Snapshot(src, wavescope.SnapshotOptions{
//	    Width:  800,
//	    Height: 160,
//	})
//	png.Encode(out, img)
//
// For live rendering, drive the pieces yourself: a sources.Pump (or your
// own capture callback) feeds a waveform.Processor on the audio thread,
// results cross to the UI thread through a waveform.Latest slot, and a
// render.Renderer draws on every animation tick. See examples/scope for a
// complete terminal viewer.
//
// # Supported formats
//
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Configuration
//
// waveform.Config validates session parameters (buffer size, skip window,
// input format); render.Style carries the visual knobs (bar geometry,
// colors, gain, amplitude mode). Package settings loads both from YAML.
package wavescope
