// SPDX-License-Identifier: EPL-2.0

package waveform

// Center is the visualization byte value that represents silence.
// Converted buffers hold unsigned bytes in [0, 255] around this midpoint.
const Center = 128

// Frame is one raw audio frame handed to the converter.
//
// It is a tagged variant with exactly two shapes:
//   - PCM: interleaved signed integer samples of 8, 16 or 32 bits per
//     sample (little-endian), with one or more channels.
//   - Normalized: float32 samples already scaled to [-1, 1], assumed mono
//     and already resampled by the caller to the target buffer size.
//
// A Frame is immutable from the converter's point of view: the underlying
// slices are owned by the caller and are only read during conversion.
type Frame struct {
	pcm      []byte
	samples  []float32
	bits     int
	channels int

	normalized bool
}

// PCMFrame wraps interleaved integer PCM bytes as a Frame.
// The data is not validated here; Convert reports unsupported bit depths
// and misaligned buffers.
func PCMFrame(data []byte, bitsPerSample, channels int) Frame {
	return Frame{
		pcm:      data,
		bits:     bitsPerSample,
		channels: channels,
	}
}

// NormalizedFrame wraps pre-normalized float samples as a Frame.
// Values outside [-1, 1] are clamped during conversion.
func NormalizedFrame(samples []float32) Frame {
	return Frame{
		samples:    samples,
		normalized: true,
	}
}

// Normalized reports whether the frame carries pre-normalized float samples.
func (f Frame) Normalized() bool { return f.normalized }

// BitsPerSample of a PCM frame. Zero for normalized frames.
func (f Frame) BitsPerSample() int { return f.bits }

// Channels of a PCM frame. Zero for normalized frames.
func (f Frame) Channels() int { return f.channels }

// Data returns the raw PCM bytes of a PCM frame. Nil for normalized frames.
func (f Frame) Data() []byte { return f.pcm }

// Samples returns the float samples of a normalized frame. Nil for PCM
// frames.
func (f Frame) Samples() []float32 { return f.samples }

// Empty reports whether the frame carries no sample data at all.
func (f Frame) Empty() bool {
	if f.normalized {
		return len(f.samples) == 0
	}
	return len(f.pcm) == 0
}

// sampleFrames returns the number of per-channel sample frames in a PCM
// frame, assuming an aligned buffer.
func (f Frame) sampleFrames() int {
	stride := (f.bits / 8) * f.channels
	if stride == 0 {
		return 0
	}
	return len(f.pcm) / stride
}
