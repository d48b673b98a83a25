// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Convert turns one raw audio frame into a fresh visualization buffer of
// exactly bufferSize bytes. Silence maps to Center (128), full positive
// amplitude to 255 and full negative amplitude to 0 (or 1, depending on the
// integer range asymmetry of the source format).
//
// PCM input is partitioned into bufferSize equal-width bins. Within each bin
// every sample frame is mixed down by averaging its channels, and the mixed
// value with the largest absolute magnitude is retained (peak-hold), which
// preserves visual transients better than averaging the bin. The retained
// value is normalized by 2^(bits-1)-1 and mapped to a byte via
// floor(128 + n*127).
//
// Normalized float input skips decoding entirely: each sample is clamped to
// [-1, 1] and mapped one-to-one to an output byte. Callers are expected to
// have resampled normalized input to bufferSize already; shorter input
// leaves the trailing bytes at silence.
//
// An empty frame yields a buffer filled with Center. A source shorter than
// bufferSize produces data only in the bins an actual sample maps to; the
// remaining bins stay at Center rather than being interpolated.
func Convert(frame Frame, bufferSize int) ([]byte, error) {
	dst := make([]byte, bufferSize)
	if err := ConvertInto(dst, frame); err != nil {
		return nil, err
	}
	return dst, nil
}

// ConvertInto is the allocation-free variant of Convert: it writes the
// visualization bytes into dst, whose length defines the output buffer size.
// The same dst may be reused across calls as a caller-owned scratch buffer.
func ConvertInto(dst []byte, frame Frame) error {
	if len(dst) == 0 {
		return ErrEmptyDst
	}

	if frame.normalized {
		convertNormalized(dst, frame.samples)
		return nil
	}

	return convertPCM(dst, frame)
}

func convertNormalized(dst []byte, samples []float32) {
	n := len(samples)
	if n > len(dst) {
		n = len(dst)
	}

	for i := 0; i < n; i++ {
		v := samples[i]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		dst[i] = byte(Center + int(math.Floor(float64(v)*127)))
	}

	for i := n; i < len(dst); i++ {
		dst[i] = Center
	}
}

func convertPCM(dst []byte, frame Frame) error {
	switch frame.bits {
	case 8, 16, 32:
	default:
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, frame.bits)
	}

	if frame.channels < 1 {
		return fmt.Errorf("%w: got %d", ErrChannelCount, frame.channels)
	}

	stride := (frame.bits / 8) * frame.channels
	if len(frame.pcm)%stride != 0 {
		return fmt.Errorf("%w: %d bytes with %d-byte sample frames",
			ErrMisalignedFrame, len(frame.pcm), stride)
	}

	srcFrames := len(frame.pcm) / stride
	if srcFrames == 0 {
		fill(dst, Center)
		return nil
	}

	// Maximum positive magnitude of the format, e.g. 32767 for 16-bit.
	maxMag := float64(int64(1)<<(frame.bits-1) - 1)
	binWidth := float64(srcFrames) / float64(len(dst))

	for i := range dst {
		start := int(float64(i) * binWidth)
		end := int(float64(i+1) * binWidth)
		if end > srcFrames {
			end = srcFrames
		}
		if start >= end {
			// Upsampling: no source sample maps here, leave silence.
			dst[i] = Center
			continue
		}

		// Peak-hold over the channel-mixed samples of the bin, keeping
		// the sign of the retained value.
		var hold float64
		for s := start; s < end; s++ {
			mixed := mixChannels(frame, s)
			if math.Abs(mixed) > math.Abs(hold) {
				hold = mixed
			}
		}

		dst[i] = byte(Center + int(math.Floor(hold/maxMag*127)))
	}

	return nil
}

// mixChannels averages all channel values of one sample frame in the raw
// integer domain.
func mixChannels(frame Frame, sampleFrame int) float64 {
	base := sampleFrame * frame.channels
	var sum float64
	for c := 0; c < frame.channels; c++ {
		sum += decodeSample(frame.pcm, base+c, frame.bits)
	}
	return sum / float64(frame.channels)
}

func decodeSample(data []byte, idx, bits int) float64 {
	switch bits {
	case 8:
		return float64(int8(data[idx]))
	case 16:
		return float64(int16(binary.LittleEndian.Uint16(data[2*idx:])))
	default: // 32, guarded by convertPCM
		return float64(int32(binary.LittleEndian.Uint32(data[4*idx:])))
	}
}

func fill(dst []byte, v byte) {
	for i := range dst {
		dst[i] = v
	}
}
