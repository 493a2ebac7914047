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

package framebuffer

import "fmt"

// Rect is a rectangle of the frame buffer. A list of rectangles is given to
// the compositor to indicate which parts of the frame buffer have changed.
//
// A Rect is a plain value. Lists of regions are slices of Rect and nothing
// keeps hold of them once the call they were passed to has returned.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.Width, r.Height)
}

// Empty returns true if the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Within returns true if r lies entirely inside the area (0, 0, w, h).
// Empty rectangles are within any area so long as the origin is.
func (r Rect) Within(w, h int) bool {
	if r.X < 0 || r.Y < 0 || r.Width < 0 || r.Height < 0 {
		return false
	}
	// no additions. a large position plus a size would overflow
	return r.Width <= w && r.X <= w-r.Width && r.Height <= h && r.Y <= h-r.Height
}

// Intersect returns the rectangle covered by both r and s. The result is
// empty if they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.Width, s.X+s.Width)
	y1 := min(r.Y+r.Height, s.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Scale multiplies the rectangle's position and size by the horizontal and
// vertical factors.
func (r Rect) Scale(zx, zy int) Rect {
	return Rect{X: r.X * zx, Y: r.Y * zy, Width: r.Width * zx, Height: r.Height * zy}
}
