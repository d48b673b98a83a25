// SPDX-License-Identifier: EPL-2.0

package termsurface

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Surface adapts a tcell screen to the render.Surface interface, mapping
// one pixel to one terminal cell. Corner radii are ignored: cells have no
// sub-cell precision.
//
// The renderer draws into the screen's back buffer; call Show after each
// tick to flush it to the terminal.
type Surface struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func (s *Surface) Size() (int, int) {
	return s.screen.Size()
}

func (s *Surface) Fill(c color.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
}

func (s *Surface) FillRect(x, y, w, h, _ int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}

	sw, sh := s.screen.Size()
	style := tcell.StyleDefault.Foreground(toTcell(c))

	for py := max(y, 0); py < y+h && py < sh; py++ {
		for px := max(x, 0); px < x+w && px < sw; px++ {
			s.screen.SetContent(px, py, '█', nil, style)
		}
	}
}

// Show flushes the back buffer to the terminal.
func (s *Surface) Show() {
	s.screen.Show()
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
