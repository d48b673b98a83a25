// SPDX-License-Identifier: EPL-2.0

package wavescope

import (
	"github.com/ik5/wavescope/formats/aiff"
	"github.com/ik5/wavescope/formats/mp3"
	"github.com/ik5/wavescope/formats/vorbis"
	"github.com/ik5/wavescope/formats/wav"
	"github.com/ik5/wavescope/sources"
)

// NewDefaultRegistry returns a fresh registry with every built-in decoder
// registered under its usual file extensions.
//
// The registry is a plain value: pass it to the components that need
// format detection instead of relying on package-level state.
func NewDefaultRegistry() *sources.Registry {
	reg := sources.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}
