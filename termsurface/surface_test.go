// SPDX-License-Identifier: EPL-2.0

package termsurface

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSim(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()

	cells, w, _ := screen.GetContents()
	cell := cells[y*w+x]
	if len(cell.Runes) == 0 {
		return 0
	}
	return cell.Runes[0]
}

func TestSurface_Size(t *testing.T) {
	t.Parallel()

	s := New(newSim(t, 24, 8))
	w, h := s.Size()
	if w != 24 || h != 8 {
		t.Errorf("Size() = (%d, %d), want (24, 8)", w, h)
	}
}

func TestSurface_FillRectDrawsBlocks(t *testing.T) {
	t.Parallel()

	screen := newSim(t, 10, 6)
	s := New(screen)

	s.Fill(color.RGBA{A: 0xff})
	s.FillRect(2, 1, 3, 2, 0, color.RGBA{R: 0xff, A: 0xff})
	s.Show()

	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 1 && y < 3
			got := cellRune(t, screen, x, y)
			if inside && got != '█' {
				t.Fatalf("cell (%d, %d) = %q, want block", x, y, got)
			}
			if !inside && got == '█' {
				t.Fatalf("cell (%d, %d) = block, want background", x, y)
			}
		}
	}
}

func TestSurface_FillRectClips(t *testing.T) {
	t.Parallel()

	screen := newSim(t, 5, 5)
	s := New(screen)

	// Out-of-bounds rectangles clip instead of panicking.
	s.FillRect(-2, -2, 4, 4, 0, color.RGBA{R: 0xff, A: 0xff})
	s.FillRect(100, 100, 3, 3, 0, color.RGBA{R: 0xff, A: 0xff})
	s.FillRect(0, 0, -1, 3, 0, color.RGBA{R: 0xff, A: 0xff})
	s.Show()

	if got := cellRune(t, screen, 1, 1); got != '█' {
		t.Errorf("clipped cell (1, 1) = %q, want block", got)
	}
	if got := cellRune(t, screen, 3, 3); got == '█' {
		t.Error("cell (3, 3) drawn, want untouched")
	}
}

func TestSurface_RadiusIgnored(t *testing.T) {
	t.Parallel()

	screen := newSim(t, 6, 6)
	s := New(screen)

	// Cells have no sub-cell precision: a radius draws the full rectangle.
	s.FillRect(0, 0, 4, 4, 2, color.RGBA{R: 0xff, A: 0xff})
	s.Show()

	if got := cellRune(t, screen, 0, 0); got != '█' {
		t.Errorf("corner cell = %q, want block", got)
	}
}
