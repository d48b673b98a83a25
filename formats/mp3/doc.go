// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into sources.Source streams.
//
// Decoding is handled by github.com/hajimehoshi/go-mp3, which always
// outputs 16-bit stereo PCM regardless of the encoded channel count, so
// Channels() is always 2.
//
//	dec := mp3.Decoder{}
//	src, err := dec.Decode(file)
package mp3
