// SPDX-License-Identifier: EPL-2.0

package waveform

import "fmt"

// Configuration bounds. Values outside these ranges are rejected by
// Validate, never silently clamped.
const (
	MinBufferSize = 64
	MaxBufferSize = 16384
	MaxSkipFrames = 100
)

// Config describes one capture session's conversion parameters.
type Config struct {
	// BufferSize is the visualization buffer length in bytes,
	// in [MinBufferSize, MaxBufferSize].
	BufferSize int
	// SkipInitialFrames is how many leading frames the processor discards
	// to hide hardware warm-up noise, in [0, MaxSkipFrames].
	SkipInitialFrames int
	// BitsPerSample of incoming PCM frames: 8, 16 or 32.
	BitsPerSample int
	// Channels of incoming PCM frames, at least 1.
	Channels int
}

// DefaultConfig returns a config suitable for typical capture callbacks:
// 512-byte buffers, no skip window, 16-bit mono input.
func DefaultConfig() Config {
	return Config{
		BufferSize:    512,
		BitsPerSample: 16,
		Channels:      1,
	}
}

// Validate rejects out-of-range configurations.
func (c Config) Validate() error {
	if c.BufferSize < MinBufferSize || c.BufferSize > MaxBufferSize {
		return fmt.Errorf("%w: %d not in [%d, %d]",
			ErrBufferSizeRange, c.BufferSize, MinBufferSize, MaxBufferSize)
	}

	if c.SkipInitialFrames < 0 || c.SkipInitialFrames > MaxSkipFrames {
		return fmt.Errorf("%w: %d not in [0, %d]",
			ErrSkipFramesRange, c.SkipInitialFrames, MaxSkipFrames)
	}

	switch c.BitsPerSample {
	case 8, 16, 32:
	default:
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, c.BitsPerSample)
	}

	if c.Channels < 1 {
		return fmt.Errorf("%w: got %d", ErrChannelCount, c.Channels)
	}

	return nil
}
