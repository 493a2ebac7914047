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

package memsurface

import (
	"image"
	"image/color"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
	"github.com/xrick-go/xrick/sysvid/palette"
)

// Surface is an implementation of compositor.Surface that keeps everything in
// memory. It is used by the headless mode and for testing.
type Surface struct {
	width  int
	height int
	pitch  int
	pixels []uint8

	colours [palette.Size]color.RGBA

	locked bool

	// rectangles marked dirty since the last call to Present()
	dirty []framebuffer.Rect

	// every rectangle that has been presented, in order. reset with
	// ClearJournal()
	presented []framebuffer.Rect

	// number of calls to Present()
	presents int

	// number of calls to Lock() and Unlock()
	locks   int
	unlocks int

	// if failLock is greater than zero then the nth call to Lock() (counting
	// from one) will fail
	failLock int

	// the next call to SetColours() will fail
	failColours bool
}

// NewSurface is the preferred method of initialisation for the Surface type.
// The pitch of the surface is the same as the width.
func NewSurface(width, height int) *Surface {
	return NewSurfaceWithPitch(width, height, width)
}

// NewSurfaceWithPitch allows the creation of a surface where the rows are
// padded. The pitch must be at least as large as the width.
func NewSurfaceWithPitch(width, height, pitch int) *Surface {
	pitch = max(pitch, width)
	s := &Surface{
		width:  width,
		height: height,
		pitch:  pitch,
		pixels: make([]uint8, pitch*height),
	}
	for i := range s.colours {
		s.colours[i] = color.RGBA{A: 255}
	}
	return s
}

// Sentinel error patterns.
const (
	// returned by Lock() when a failure has been arranged with FailLock()
	ErrLockFailed = "memsurface: lock failed"

	// returned by Lock() if the surface is already locked
	ErrAlreadyLocked = "memsurface: already locked"

	ErrColourOverflow = "memsurface: colour table overflow (%d colours from %d)"

	// returned by SetColours() after a call to FailColours()
	ErrColoursFailed = "memsurface: set colours failed"
)

// FailLock arranges for the nth call to Lock() from now to fail.
func (s *Surface) FailLock(n int) {
	s.failLock = s.locks + n
}

// Lock implements the compositor.Surface interface.
func (s *Surface) Lock() ([]uint8, int, error) {
	if s.locked {
		return nil, 0, curated.Errorf(ErrAlreadyLocked)
	}
	s.locks++
	if s.failLock > 0 && s.locks == s.failLock {
		s.failLock = 0
		return nil, 0, curated.Errorf(ErrLockFailed)
	}
	s.locked = true
	return s.pixels, s.pitch, nil
}

// Unlock implements the compositor.Surface interface.
func (s *Surface) Unlock() {
	if s.locked {
		s.unlocks++
	}
	s.locked = false
}

// Locked returns true if the surface is currently locked.
func (s *Surface) Locked() bool {
	return s.locked
}

// LockCount returns the number of calls to Lock() and Unlock(), including
// failed calls to Lock().
func (s *Surface) LockCount() (locks int, unlocks int) {
	return s.locks, s.unlocks
}

// MarkDirty implements the compositor.Surface interface.
func (s *Surface) MarkDirty(r framebuffer.Rect) {
	s.dirty = append(s.dirty, r)
}

// FailColours arranges for the next call to SetColours() to fail. The colour
// table is left unchanged by the failed call.
func (s *Surface) FailColours() {
	s.failColours = true
}

// SetColours implements the compositor.Surface interface.
func (s *Surface) SetColours(start int, colours []color.RGBA) error {
	if s.failColours {
		s.failColours = false
		return curated.Errorf(ErrColoursFailed)
	}
	if start < 0 || start+len(colours) > len(s.colours) {
		return curated.Errorf(ErrColourOverflow, len(colours), start)
	}
	copy(s.colours[start:], colours)
	return nil
}

// Present implements the compositor.Surface interface.
func (s *Surface) Present() error {
	s.presented = append(s.presented, s.dirty...)
	s.dirty = s.dirty[:0]
	s.presents++
	return nil
}

// Presented returns every rectangle that has been presented since the
// surface was created or since the last call to ClearJournal().
func (s *Surface) Presented() []framebuffer.Rect {
	return s.presented
}

// Presents returns the number of calls to Present().
func (s *Surface) Presents() int {
	return s.presents
}

// Dirty returns the rectangles marked dirty but not yet presented.
func (s *Surface) Dirty() []framebuffer.Rect {
	return s.dirty
}

// ClearJournal forgets the presented rectangles.
func (s *Surface) ClearJournal() {
	s.presented = s.presented[:0]
}

// Width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Index returns the palette index of the surface pixel at x, y.
func (s *Surface) Index(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.pixels[y*s.pitch+x]
}

// Fill sets every pixel of the surface to the index without marking anything
// dirty. Useful for checking which pixels are changed by the compositor.
func (s *Surface) Fill(idx uint8) {
	for i := range s.pixels {
		s.pixels[i] = idx
	}
}

// Colour returns the entry in the surface's colour table.
func (s *Surface) Colour(idx uint8) color.RGBA {
	return s.colours[idx]
}

// At returns the colour of the surface pixel at x, y, as seen through the
// surface's colour table.
func (s *Surface) At(x, y int) color.RGBA {
	return s.colours[s.Index(x, y)]
}

// Image returns an RGBA image of the entire surface.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			img.SetRGBA(x, y, s.At(x, y))
		}
	}
	return img
}
