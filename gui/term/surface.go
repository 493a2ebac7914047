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

package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/xrick-go/xrick/gui/memsurface"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
)

// the character used for every cell. the foreground is the top pixel and the
// background is the bottom pixel
const halfBlock = '▀'

// Surface implements the compositor.Surface interface. The indexed pixels and
// the colour table are held by a memsurface.Surface.
type Surface struct {
	*memsurface.Surface

	screen tcell.Screen

	// number of pixels skipped in both directions so that the image fits the
	// terminal. a step of one means no pixels are skipped
	step int

	// the whole surface should be drawn on the next call to Present()
	refresh bool
}

func newSurface(screen tcell.Screen, width, height int) *Surface {
	s := &Surface{
		Surface: memsurface.NewSurface(width, height),
		screen:  screen,
		refresh: true,
	}
	s.resize()
	return s
}

// resize calculates the step value for the current terminal size.
func (s *Surface) resize() {
	cols, rows := s.screen.Size()
	s.step = 1
	if cols <= 0 || rows <= 0 {
		return
	}
	for s.Width()/s.step > cols || s.Height()/s.step > rows*2 {
		s.step++
	}
	s.refresh = true
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

	if s.refresh {
		s.refresh = false
		s.screen.Clear()
		s.draw(framebuffer.Rect{Width: s.Width(), Height: s.Height()})
	} else {
		for _, r := range s.Presented() {
			s.draw(r)
		}
	}
	s.ClearJournal()

	s.screen.Show()

	return nil
}

// draw every cell that covers the region.
func (s *Surface) draw(r framebuffer.Rect) {
	if r.Empty() {
		return
	}

	cellH := s.step * 2

	for cy := r.Y / cellH; cy <= (r.Y+r.Height-1)/cellH; cy++ {
		for cx := r.X / s.step; cx <= (r.X+r.Width-1)/s.step; cx++ {
			x := cx * s.step
			y := cy * cellH
			top := rgb(s.At(x, y))
			bottom := rgb(s.At(x, y+s.step))
			s.screen.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
