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

package memsurface_test

import (
	"image/color"
	"testing"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/gui/memsurface"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
	"github.com/xrick-go/xrick/test"
)

func TestLocking(t *testing.T) {
	s := memsurface.NewSurface(4, 3)

	pix, pitch, err := s.Lock()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(pix), 12)
	test.ExpectEquality(t, pitch, 4)
	test.ExpectSuccess(t, s.Locked())

	_, _, err = s.Lock()
	test.ExpectSuccess(t, curated.Is(err, memsurface.ErrAlreadyLocked))

	s.Unlock()
	test.ExpectFailure(t, s.Locked())

	// unlocking an unlocked surface is not counted
	s.Unlock()
	locks, unlocks := s.LockCount()
	test.ExpectEquality(t, locks, 1)
	test.ExpectEquality(t, unlocks, 1)
}

func TestFailColours(t *testing.T) {
	s := memsurface.NewSurface(4, 3)
	s.FailColours()

	err := s.SetColours(0, []color.RGBA{{R: 255, A: 255}})
	test.ExpectSuccess(t, curated.Is(err, memsurface.ErrColoursFailed))
	test.ExpectEquality(t, s.Colour(0), color.RGBA{A: 255})

	// failure only happens once
	test.ExpectSuccess(t, s.SetColours(0, []color.RGBA{{R: 255, A: 255}}))
	test.ExpectEquality(t, s.Colour(0), color.RGBA{R: 255, A: 255})
}

func TestFailLock(t *testing.T) {
	s := memsurface.NewSurface(4, 3)
	s.FailLock(2)

	_, _, err := s.Lock()
	test.DemandSuccess(t, err)
	s.Unlock()

	_, _, err = s.Lock()
	test.ExpectSuccess(t, curated.Is(err, memsurface.ErrLockFailed))
	test.ExpectFailure(t, s.Locked())

	// failure only happens once
	_, _, err = s.Lock()
	test.ExpectSuccess(t, err)
	s.Unlock()
}

func TestPitch(t *testing.T) {
	s := memsurface.NewSurfaceWithPitch(4, 3, 8)
	pix, pitch, err := s.Lock()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pitch, 8)
	test.ExpectEquality(t, len(pix), 24)

	pix[1*pitch+2] = 9
	s.Unlock()
	test.ExpectEquality(t, s.Index(2, 1), uint8(9))
	test.ExpectEquality(t, s.Index(10, 1), uint8(0))

	// pitch is never less than the width
	s = memsurface.NewSurfaceWithPitch(4, 3, 2)
	_, pitch, _ = s.Lock()
	test.ExpectEquality(t, pitch, 4)
}

func TestJournal(t *testing.T) {
	s := memsurface.NewSurface(10, 10)
	s.MarkDirty(framebuffer.Rect{X: 1, Y: 1, Width: 2, Height: 2})
	s.MarkDirty(framebuffer.Rect{X: 5, Y: 5, Width: 1, Height: 1})
	test.ExpectEquality(t, len(s.Dirty()), 2)
	test.ExpectEquality(t, s.Presents(), 0)

	test.ExpectSuccess(t, s.Present())
	test.ExpectEquality(t, len(s.Dirty()), 0)
	test.ExpectEquality(t, len(s.Presented()), 2)
	test.ExpectEquality(t, s.Presented()[1], framebuffer.Rect{X: 5, Y: 5, Width: 1, Height: 1})
	test.ExpectEquality(t, s.Presents(), 1)

	s.ClearJournal()
	test.ExpectEquality(t, len(s.Presented()), 0)
	test.ExpectEquality(t, s.Presents(), 1)
}

func TestColours(t *testing.T) {
	s := memsurface.NewSurface(2, 2)
	red := color.RGBA{R: 255, A: 255}

	test.ExpectEquality(t, s.Colour(3), color.RGBA{A: 255})
	test.ExpectSuccess(t, s.SetColours(3, []color.RGBA{red}))
	test.ExpectEquality(t, s.Colour(3), red)

	err := s.SetColours(255, []color.RGBA{red, red})
	test.ExpectSuccess(t, curated.Is(err, memsurface.ErrColourOverflow))

	s.Fill(3)
	test.ExpectEquality(t, s.At(1, 1), red)

	img := s.Image()
	test.ExpectEquality(t, img.Bounds().Dx(), 2)
	test.ExpectEquality(t, img.RGBAAt(0, 1), red)
}
