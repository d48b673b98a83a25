// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("unsupported bits per sample")
	ErrMisalignedFrame     = errors.New("frame length not aligned to sample size")
	ErrBufferSizeRange     = errors.New("buffer size out of range")
	ErrSkipFramesRange     = errors.New("skip frame count out of range")
	ErrChannelCount        = errors.New("channel count must be at least 1")
	ErrScratchSize         = errors.New("scratch buffer length must equal configured buffer size")
	ErrEmptyDst            = errors.New("dst must not be empty")
)
