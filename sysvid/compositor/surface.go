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

package compositor

import (
	"image/color"

	"github.com/xrick-go/xrick/sysvid/framebuffer"
)

// Surface is the destination of the compositor. It is an 8-bit indexed
// surface with a colour table of its own, provided by whatever is hosting the
// game (an SDL window, an ebiten game, a terminal).
type Surface interface {
	// Lock the surface for direct pixel access. The pixels slice is only
	// valid until Unlock() is called. Pitch is the number of bytes between
	// the start of one row and the next.
	Lock() (pixels []uint8, pitch int, err error)

	// Unlock is called once for every successful call to Lock().
	Unlock()

	// MarkDirty flags the rectangle of the surface as needing to be shown on
	// the next call to Present().
	MarkDirty(r framebuffer.Rect)

	// SetColours replaces entries in the surface's colour table starting
	// at index start.
	SetColours(start int, colours []color.RGBA) error

	// Present shows the dirty parts of the surface.
	Present() error
}
