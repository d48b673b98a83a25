// SPDX-License-Identifier: EPL-2.0

// Package waveform converts raw audio frames into visualization buffers.
//
// This package is the stateless/lightly-stateful half of the wavescope
// pipeline: an external capture layer hands it raw frames, it hands the
// renderer fixed-length byte buffers.
//
// # Frames
//
// A Frame is a tagged variant over the two input shapes the pipeline
// accepts:
//
//	f := waveform.PCMFrame(data, 16, 2)       // interleaved integer PCM
//	f := waveform.NormalizedFrame(samples)    // float32 in [-1, 1]
//
// # Conversion
//
// Convert partitions the source into equal-width bins, mixes channels by
// averaging, keeps the peak value per bin and maps it to a byte centered
// at 128:
//
//	buf, err := waveform.Convert(f, 512)
//	// len(buf) == 512, silence == 128, full scale == 0/255
//
// ConvertInto writes into a caller-owned scratch buffer instead of
// allocating, for callers that convert on every audio callback.
//
// # Processor
//
// Processor adds the per-session state: a validated Config, a frame
// counter, and the skip-initial-frames window that discards hardware
// warm-up noise at stream start:
//
//	p, err := waveform.NewProcessor(waveform.Config{
//	    BufferSize:        512,
//	    SkipInitialFrames: 5,
//	    BitsPerSample:     16,
//	    Channels:          2,
//	})
//	res, err := p.Process(f) // res == nil during the skip window
//
// Process results carry a timestamp and the effective buffer size.
// Call Reset when the capture stream restarts.
//
// # Thread handoff
//
// The converter runs on whatever thread receives audio callbacks, the
// renderer on the UI tick. Latest is the single-slot atomic handoff
// between the two:
//
//	var slot waveform.Latest
//	// audio thread:
//	slot.Store(res.Buffer)
//	// render tick:
//	if buf := slot.Take(); buf != nil { ... }
//
// # Errors
//
// Unsupported bit depths and misaligned PCM buffers fail fast with
// sentinel errors (ErrUnsupportedBitDepth, ErrMisalignedFrame); invalid
// configurations are rejected by Config.Validate before any processing
// begins. A skipped frame is not an error.
package waveform
