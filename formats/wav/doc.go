// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files into sources.Source streams.
//
// It uses github.com/go-audio/wav for parsing and supports 8, 16, 24 and
// 32 bits per sample. 8-bit input is unsigned per the WAV spec and is
// re-centered during normalization.
//
//	dec := wav.Decoder{}
//	src, err := dec.Decode(file)
//
// Decode prefers an io.ReadSeeker; other readers are buffered in memory
// first, which is a go-audio requirement.
package wav
