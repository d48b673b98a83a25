// SPDX-License-Identifier: EPL-2.0

// Package sources defines the audio input boundary of wavescope.
//
// # Source interface
//
// Everything that produces audio for the pipeline implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// The format decoders under formats/ return Sources; tests use the
// generators in internal/audiotest.
//
// # Registry
//
// Decoders register under a format key so hosts can pick one by file
// extension:
//
//	reg := sources.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
//
// # Framing
//
// A Pump slices a Source into raw frames for the waveform converter,
// either as re-encoded 16-bit PCM chunks or as mono normalized frames
// pre-resampled to the visualization buffer size:
//
//	pump, _ := sources.NewNormalizedPump(src, 2048, 512)
//	for {
//	    frame, err := pump.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // hand frame to a waveform.Processor
//	}
//
// MonoMixer and ResampleLinear are the reusable pieces behind the
// normalized mode, exported for callers that frame audio themselves.
package sources
