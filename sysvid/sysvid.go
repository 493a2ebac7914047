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

package sysvid

import (
	"fmt"
	"os"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/logger"
	"github.com/xrick-go/xrick/sysvid/compositor"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
	"github.com/xrick-go/xrick/sysvid/palette"
)

// Dimensions of the frame buffer and the zoom factor used by the compositor.
const (
	Width  = 320
	Height = 200
	Zoom   = 1
)

// Sentinal error patterns.
const (
	ErrInit = "sysvid: %v"
)

// Video is the video system. It owns the frame buffer and the palette and
// knows about the destination surface.
type Video struct {
	fb  *framebuffer.FrameBuffer
	pal *palette.Palette
	cmp *compositor.Compositor

	fatal func(error)
}

// NewVideo is the preferred method of initialisation for the Video type. The
// surface must be Width*Zoom pixels wide and Height*Zoom pixels tall.
//
// An error from NewVideo() should be treated as fatal by the caller.
func NewVideo(surface compositor.Surface) (*Video, error) {
	vid := &Video{
		pal:   palette.NewPalette(),
		fatal: Panic,
	}

	var err error

	vid.fb, err = framebuffer.NewFrameBuffer(Width, Height)
	if err != nil {
		return nil, curated.Errorf(ErrInit, err)
	}

	vid.cmp, err = compositor.NewCompositor(vid.fb, surface, Zoom, Zoom)
	if err != nil {
		return nil, curated.Errorf(ErrInit, err)
	}

	logger.Logf(logger.Allow, "sysvid", "frame buffer %dx%d (zoom %d)", Width, Height, Zoom)

	return vid, nil
}

// Shutdown releases the frame buffer. The Video instance should not be used
// after this call, although calling Shutdown() more than once is safe.
func (vid *Video) Shutdown() {
	if !vid.fb.Valid() {
		return
	}
	vid.fb.Release()
	logger.Log(logger.Allow, "sysvid", "shutdown")
}

// SetFatalHandler replaces the function called when Update() fails. A nil
// value restores the default handler, Panic().
func (vid *Video) SetFatalHandler(f func(error)) {
	if f == nil {
		f = Panic
	}
	vid.fatal = f
}

// FrameBuffer returns the frame buffer that game logic should draw into.
func (vid *Video) FrameBuffer() *framebuffer.FrameBuffer {
	return vid.fb
}

// Palette returns the active palette.
func (vid *Video) Palette() *palette.Palette {
	return vid.pal
}

// ScreenRect returns the rectangle covering the entire frame buffer.
func (vid *Video) ScreenRect() framebuffer.Rect {
	return vid.fb.Bounds()
}

// Clear sets every pixel in the frame buffer to index zero. The surface is not
// changed until the next call to Update().
func (vid *Video) Clear() {
	vid.fb.Clear()
}

// SetPalette copies count entries to the active palette and commits them to
// the surface. Pixels already on the surface are not repainted until they are
// next included in a call to Update().
//
// The active palette is only changed if the surface accepts the colours.
func (vid *Video) SetPalette(entries []palette.Entry, count int) error {
	next := *vid.pal
	if err := next.Set(entries, count); err != nil {
		return err
	}
	if err := vid.cmp.SetPalette(&next, count); err != nil {
		return err
	}
	*vid.pal = next
	logger.Logf(logger.Allow, "sysvid", "palette set (%d colours)", count)
	return nil
}

// SetGamePalette sets the palette to one of the built-in colour tables.
func (vid *Video) SetGamePalette(tbl palette.Table) error {
	return vid.SetPalette(tbl.Entries(), tbl.Len())
}

// Update copies the regions of the frame buffer to the surface. Regions are
// processed in order. A nil slice does nothing.
//
// Any error is passed to the fatal handler. Once the fatal handler has been
// called no more regions are processed.
func (vid *Video) Update(regions []framebuffer.Rect) {
	if err := vid.cmp.Update(regions); err != nil {
		vid.fatal(err)
	}
}

// Panic is the default fatal handler. It logs the error, prints it to stderr
// and terminates the program.
func Panic(err error) {
	logger.Logf(logger.Allow, "sysvid", "panic: %v", err)
	fmt.Fprintf(os.Stderr, "xrick/panic: %v\n", err)
	os.Exit(1)
}
