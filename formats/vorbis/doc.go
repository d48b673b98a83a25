// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into sources.Source streams.
//
// Decoding is handled by github.com/jfreymuth/oggvorbis, which already
// yields normalized float32 samples, so no scaling pass is needed.
//
//	dec := vorbis.Decoder{}
//	src, err := dec.Decode(file)
package vorbis
