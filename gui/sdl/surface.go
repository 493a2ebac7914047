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

package sdl

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
	"github.com/xrick-go/xrick/sysvid/palette"
)

// Surface implements the compositor.Surface interface with an 8-bit paletted
// SDL surface.
type Surface struct {
	win *Window

	pixels *sdl.Surface

	// local copy of the colour table. SDL's SetColors() always starts from
	// index zero so the whole table is committed every time
	colours [palette.Size]sdl.Color

	// rectangles marked dirty since the last call to Present()
	dirty []sdl.Rect

	// the whole window should be redrawn on the next call to Present()
	refresh bool
}

func newSurface(win *Window) (*Surface, error) {
	s := &Surface{
		win:     win,
		refresh: true,
	}

	var err error
	s.pixels, err = sdl.CreateRGBSurfaceWithFormat(0, win.width, win.height, 8, uint32(sdl.PIXELFORMAT_INDEX8))
	if err != nil {
		return nil, curated.Errorf(ErrSDL, err)
	}

	for i := range s.colours {
		s.colours[i] = sdl.Color{A: 255}
	}

	return s, nil
}

func (s *Surface) destroy() {
	s.pixels.Free()
}

// Lock implements the compositor.Surface interface.
func (s *Surface) Lock() ([]uint8, int, error) {
	if err := s.pixels.Lock(); err != nil {
		return nil, 0, curated.Errorf(ErrSDL, err)
	}
	return s.pixels.Pixels(), int(s.pixels.Pitch), nil
}

// Unlock implements the compositor.Surface interface.
func (s *Surface) Unlock() {
	s.pixels.Unlock()
}

// MarkDirty implements the compositor.Surface interface.
func (s *Surface) MarkDirty(r framebuffer.Rect) {
	s.dirty = append(s.dirty, sdl.Rect{
		X: int32(r.X),
		Y: int32(r.Y),
		W: int32(r.Width),
		H: int32(r.Height),
	})
}

// SetColours implements the compositor.Surface interface.
func (s *Surface) SetColours(start int, colours []color.RGBA) error {
	if start < 0 || start+len(colours) > len(s.colours) {
		return curated.Errorf(ErrSDL, "colour table overflow")
	}

	for i, c := range colours {
		s.colours[start+i] = sdl.Color{R: c.R, G: c.G, B: c.B, A: 255}
	}

	if err := s.pixels.Format.Palette.SetColors(s.colours[:]); err != nil {
		return curated.Errorf(ErrSDL, err)
	}

	// changing a colour changes every pixel that uses it
	s.refresh = true

	return nil
}

// Present implements the compositor.Surface interface. Dirty rectangles are
// scaled and blitted to the window surface and only those parts of the
// window are updated.
func (s *Surface) Present() error {
	dst, err := s.win.window.GetSurface()
	if err != nil {
		return curated.Errorf(ErrSDL, err)
	}

	scale := s.win.scale

	if s.refresh {
		s.refresh = false
		s.dirty = s.dirty[:0]
		if err := s.pixels.BlitScaled(nil, dst, nil); err != nil {
			return curated.Errorf(ErrSDL, err)
		}
		if err := s.win.window.UpdateSurface(); err != nil {
			return curated.Errorf(ErrSDL, err)
		}
		return nil
	}

	if len(s.dirty) == 0 {
		return nil
	}

	rects := make([]sdl.Rect, 0, len(s.dirty))
	for i := range s.dirty {
		src := s.dirty[i]
		r := sdl.Rect{X: src.X * scale, Y: src.Y * scale, W: src.W * scale, H: src.H * scale}
		if err := s.pixels.BlitScaled(&src, dst, &r); err != nil {
			return curated.Errorf(ErrSDL, err)
		}
		rects = append(rects, r)
	}
	s.dirty = s.dirty[:0]

	if err := s.win.window.UpdateSurfaceRects(rects); err != nil {
		return curated.Errorf(ErrSDL, err)
	}

	return nil
}
