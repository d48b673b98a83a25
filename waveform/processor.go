// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"time"

	"github.com/ik5/wavescope/internal/metrics"
)

// Result is one converted visualization buffer together with when it was
// produced and the buffer size in effect at conversion time. Ownership of
// Buffer transfers to the caller.
type Result struct {
	Buffer     []byte
	BufferSize int
	Timestamp  time.Time
}

// Processor wraps the sample converter with a skip-initial-frames policy
// and frame-count bookkeeping. It lives for the duration of one capture
// session and is discarded on stream teardown.
//
// A Processor is for single-threaded use only: it holds no locks, and
// concurrent Process calls must be serialized by the caller. Hand results
// to another thread through a Latest slot or a channel.
type Processor struct {
	cfg        Config
	frameCount int
}

// NewProcessor validates cfg and returns a processor with a fresh skip
// window.
func NewProcessor(cfg Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Processor{cfg: cfg}, nil
}

// Process converts one raw frame into a visualization buffer.
//
// While the skip window is open (frame count at most SkipInitialFrames) it
// returns (nil, nil): a deliberate no-output state, not an error, and no
// conversion work is done. Conversion failures are fatal to this call only;
// the caller decides whether to drop the frame or tear down the stream.
func (p *Processor) Process(frame Frame) (*Result, error) {
	p.frameCount++

	if p.frameCount <= p.cfg.SkipInitialFrames {
		metrics.FramesSkipped.Inc()
		return nil, nil
	}

	buf := make([]byte, p.cfg.BufferSize)
	if err := ConvertInto(buf, frame); err != nil {
		metrics.ConversionErrors.Inc()
		return nil, err
	}

	metrics.FramesProcessed.Inc()

	return &Result{
		Buffer:     buf,
		BufferSize: p.cfg.BufferSize,
		Timestamp:  time.Now(),
	}, nil
}

// ProcessInto is the scratch-buffer variant of Process: it converts into
// the caller-owned dst, which must be exactly the configured buffer size.
// It returns false with a nil error while the skip window is open.
func (p *Processor) ProcessInto(dst []byte, frame Frame) (bool, error) {
	if len(dst) != p.cfg.BufferSize {
		return false, ErrScratchSize
	}

	p.frameCount++

	if p.frameCount <= p.cfg.SkipInitialFrames {
		metrics.FramesSkipped.Inc()
		return false, nil
	}

	if err := ConvertInto(dst, frame); err != nil {
		metrics.ConversionErrors.Inc()
		return false, err
	}

	metrics.FramesProcessed.Inc()
	return true, nil
}

// Reset zeroes the frame counter, reopening the skip window. Call it
// whenever the underlying audio stream restarts; otherwise the skip window
// only applies once per processor lifetime.
func (p *Processor) Reset() {
	p.frameCount = 0
}

// FrameCount returns how many frames Process has seen since the last Reset.
func (p *Processor) FrameCount() int { return p.frameCount }

// Config returns the active configuration.
func (p *Processor) Config() Config { return p.cfg }

// UpdateConfig replaces the active configuration after validating it.
//
// It does NOT reset the frame counter: if the skip window already elapsed,
// the new config's SkipInitialFrames has no further effect until Reset is
// called. Callers changing config at a stream boundary should call Reset
// explicitly.
func (p *Processor) UpdateConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	p.cfg = cfg
	return nil
}
