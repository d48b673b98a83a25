// SPDX-License-Identifier: EPL-2.0

// Package termsurface renders wavescope waveforms into a terminal via
// github.com/gdamore/tcell. One render.Surface pixel maps to one cell.
//
//	screen, _ := tcell.NewScreen()
//	screen.Init()
//	surf := termsurface.New(screen)
//	r.Tick(buf, surf)
//	surf.Show()
//
// See examples/scope for a complete interactive viewer.
package termsurface
