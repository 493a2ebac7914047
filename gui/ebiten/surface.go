// This file is part of xrick-go.
//
// xrick-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// xrick-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with xrick-go.  If not, see <https://www.gnu.org/licenses/>.

package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/xrick-go/xrick/gui/memsurface"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
)

// Surface implements the compositor.Surface interface. The indexed pixels and
// the colour table are held by a memsurface.Surface.
type Surface struct {
	*memsurface.Surface

	// rectangles that have been presented but not yet uploaded to the image
	pending []framebuffer.Rect

	// the whole image should be uploaded by the next call to upload()
	refresh bool

	img *ebiten.Image

	// reusable conversion buffer
	rgba []uint8
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface(width, height int) *Surface {
	return &Surface{
		Surface: memsurface.NewSurface(width, height),
		refresh: true,
		img:     ebiten.NewImage(width, height),
	}
}

// SetColours implements the compositor.Surface interface.
func (s *Surface) SetColours(start int, colours []color.RGBA) error {
	if err := s.Surface.SetColours(start, colours); err != nil {
		return err
	}
	s.refresh = true
	return nil
}

// Present implements the compositor.Surface interface.
func (s *Surface) Present() error {
	if err := s.Surface.Present(); err != nil {
		return err
	}
	s.pending = append(s.pending, s.Presented()...)
	s.ClearJournal()
	return nil
}

// upload pending regions to the ebiten image. must only be called from
// Draw().
func (s *Surface) upload() {
	if s.refresh {
		s.refresh = false
		s.pending = s.pending[:0]
		s.write(s.img, framebuffer.Rect{Width: s.Width(), Height: s.Height()})
		return
	}

	for _, r := range s.pending {
		sub := s.img.SubImage(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)).(*ebiten.Image)
		s.write(sub, r)
	}
	s.pending = s.pending[:0]
}

// write the RGBA conversion of the region to the image. the image must be the
// same size as the region.
func (s *Surface) write(img *ebiten.Image, r framebuffer.Rect) {
	n := r.Width * r.Height * 4
	if cap(s.rgba) < n {
		s.rgba = make([]uint8, n)
	}
	s.rgba = s.rgba[:n]

	i := 0
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			c := s.At(x, y)
			s.rgba[i] = c.R
			s.rgba[i+1] = c.G
			s.rgba[i+2] = c.B
			s.rgba[i+3] = 255
			i += 4
		}
	}

	img.WritePixels(s.rgba)
}
