// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is the renderer's drawing target. Implementations draw into
// whatever backend they wrap: an in-memory image, a terminal, a GUI canvas.
//
// Coordinates are pixels with the origin at the top-left. Implementations
// may clip out-of-bounds rectangles silently.
type Surface interface {
	// Size returns the drawable width and height in pixels.
	Size() (w, h int)
	// Fill paints the entire surface with c.
	Fill(c color.Color)
	// FillRect paints a filled rectangle. radius > 0 rounds the corners;
	// backends without sub-cell precision may ignore it.
	FillRect(x, y, w, h, radius int, c color.Color)
}

// ImageSurface is a Surface backed by an in-memory RGBA image, suitable for
// snapshots, tests and PNG export.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a w by h RGBA surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image. Valid until the next draw call mutates it.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func (s *ImageSurface) FillRect(x, y, w, h, radius int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}

	rect := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if rect.Empty() {
		return
	}

	if radius <= 0 {
		draw.Draw(s.img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
		return
	}

	// Corner radius cannot exceed half the short side.
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}

	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			if insideRounded(px-x, py-y, w, h, radius) {
				s.img.Set(px, py, c)
			}
		}
	}
}

// insideRounded reports whether the local point (px, py) lies inside a
// w by h rounded rectangle with the given corner radius.
func insideRounded(px, py, w, h, radius int) bool {
	// Distance checks only matter inside the four corner squares.
	cx, cy := -1, -1
	if px < radius {
		cx = radius - 1
	} else if px >= w-radius {
		cx = w - radius
	}
	if py < radius {
		cy = radius - 1
	} else if py >= h-radius {
		cy = h - radius
	}
	if cx < 0 || cy < 0 {
		return true
	}

	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= radius*radius
}
