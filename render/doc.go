// SPDX-License-Identifier: EPL-2.0

// Package render draws scrolling waveforms from visualization buffers.
//
// A Renderer is tick-driven: a host animation loop calls Tick once per
// frame with the newest visualization buffer and a drawing Surface. The
// renderer keeps a bounded history of committed bar heights, scrolls it
// leftward, and animates a live bar at the leading edge:
//
//	r := render.New(render.DefaultStyle())
//	surf := render.NewImageSurface(640, 120)
//	for range ticker.C {
//	    r.Tick(slot.Take(), surf)
//	}
//
// # Amplitude modes
//
// Each tick the buffer collapses into one amplitude via the style's Mode:
// peak (largest deviation from center, the default), RMS (perceived
// loudness), or adaptive (peak divided by a decaying running maximum, so
// quiet passages stay visible after loud ones).
//
// # State machine
//
// A renderer is Idle until non-empty buffers arrive, Live while they do,
// and Paused when the host freezes it. Going Idle clears the whole
// history; Pause freezes it. Hosts drive this through the control surface:
// Pause, Resume, Clear, IsPaused, State, AudioData.
//
// # Failure semantics
//
// Nothing escapes a tick: draw failures are recovered, reported through
// OnError, and the renderer carries on. An empty buffer is not a failure,
// it renders as a flat center line.
//
// # Surfaces
//
// The Surface interface decouples the renderer from backends. ImageSurface
// (this package) renders into an RGBA image; package termsurface renders
// into a terminal.
package render
