// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM AIFF files into sources.Source streams.
//
// It uses github.com/go-audio/aiff for parsing and supports 8, 16, 24 and
// 32 bits per sample (AIFF samples are signed at every depth).
//
//	dec := aiff.Decoder{}
//	src, err := dec.Decode(file)
//
// Decode prefers an io.ReadSeeker; other readers are buffered in memory
// first, which is a go-audio requirement.
package aiff
