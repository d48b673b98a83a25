// SPDX-License-Identifier: EPL-2.0

package sources

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/wavescope/waveform"
)

// Pump slices a Source into raw frames sized for the waveform converter,
// standing in for a platform capture callback when the audio comes from a
// decoded file instead of a device.
//
// Two framing modes exist:
//   - PCM16: each chunk is re-encoded as interleaved little-endian 16-bit
//     PCM bytes and emitted as a PCM frame, leaving channel mixing and
//     length binning to the converter.
//   - Normalized: each chunk is mixed to mono and linearly resampled to the
//     target buffer size, matching the converter's one-to-one float path.
type Pump struct {
	src     Source
	mono    Source // mixer front-end, Normalized mode only
	frames  int    // sample frames per emitted raw frame
	outLen  int    // Normalized target length
	normal  bool
	floats  []float32
	pcm     []byte
}

// NewPCM16Pump emits PCM frames of framesPerChunk sample frames each.
func NewPCM16Pump(src Source, framesPerChunk int) (*Pump, error) {
	if framesPerChunk < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrFrameSize, framesPerChunk)
	}

	return &Pump{
		src:    src,
		frames: framesPerChunk,
	}, nil
}

// NewNormalizedPump emits mono normalized frames of exactly bufferSize
// samples, resampled from framesPerChunk source frames per emission.
func NewNormalizedPump(src Source, framesPerChunk, bufferSize int) (*Pump, error) {
	if framesPerChunk < 1 || bufferSize < 1 {
		return nil, fmt.Errorf("%w: chunk %d, buffer %d", ErrFrameSize, framesPerChunk, bufferSize)
	}

	return &Pump{
		src:    src,
		mono:   NewMonoMixer(src),
		frames: framesPerChunk,
		outLen: bufferSize,
		normal: true,
	}, nil
}

// Next produces the next raw frame. It returns io.EOF (with a zero Frame)
// once the source is exhausted. A partial final chunk is still emitted.
//
// The returned frame aliases the pump's internal buffers and is only valid
// until the next call to Next; convert it before pulling another frame.
func (p *Pump) Next() (waveform.Frame, error) {
	if p.normal {
		return p.nextNormalized()
	}
	return p.nextPCM16()
}

func (p *Pump) nextPCM16() (waveform.Frame, error) {
	channels := p.src.Channels()
	need := p.frames * channels
	if cap(p.floats) < need {
		p.floats = make([]float32, need)
	}
	p.floats = p.floats[:need]

	n, err := p.src.ReadSamples(p.floats)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return waveform.Frame{}, err
	}

	if cap(p.pcm) < n*2 {
		p.pcm = make([]byte, n*2)
	}
	p.pcm = p.pcm[:n*2]

	for i := 0; i < n; i++ {
		v := p.floats[i]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		binary.LittleEndian.PutUint16(p.pcm[2*i:], uint16(int16(v*32767)))
	}

	return waveform.PCMFrame(p.pcm, 16, channels), nil
}

func (p *Pump) nextNormalized() (waveform.Frame, error) {
	if cap(p.floats) < p.frames {
		p.floats = make([]float32, p.frames)
	}
	p.floats = p.floats[:p.frames]

	n, err := p.mono.ReadSamples(p.floats)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return waveform.Frame{}, err
	}

	return waveform.NormalizedFrame(ResampleLinear(p.floats[:n], p.outLen)), nil
}

// Close closes the underlying source.
func (p *Pump) Close() error {
	if err := p.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
