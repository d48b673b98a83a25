// SPDX-License-Identifier: EPL-2.0

// Package settings loads wavescope configuration from YAML.
//
// A settings file carries two sections, audio and style:
//
//	audio:
//	  buffer_size: 512
//	  skip_initial_frames: 5
//	  bits_per_sample: 16
//	  channels: 2
//	style:
//	  bar_width: 2
//	  gap: 1
//	  speed: 3
//	  gain: 1.5
//	  mode: adaptive
//	  primary_color: "#8cf0a8"
//	  secondary_color: "#101010"
//	  animate_current_pick: true
//
// Load fills defaults for absent fields, validates the audio section
// against waveform.Config's ranges, and rejects unknown modes or
// malformed colors. Style ranges (gain, bar width) are deliberately left
// to the renderer's clamping.
package settings
