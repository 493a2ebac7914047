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
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/logger"
)

// Sentinel error patterns.
const (
	ErrSDL   = "sdl: %v"
	ErrScale = "sdl: invalid window scale (%d)"
)

// MaxScale is the largest window scale supported.
const MaxScale = 6

// Window is an SDL window showing the game's frame buffer.
type Window struct {
	window *sdl.Window

	width  int32
	height int32
	scale  int32

	surface *Surface
	input   *Input
}

// NewWindow is the preferred method of initialisation for the Window type.
// The width and height are the size of the frame buffer. The window is the
// frame buffer size multiplied by the scale value.
func NewWindow(title string, width, height int, scale int) (*Window, error) {
	if scale < 1 || scale > MaxScale {
		return nil, curated.Errorf(ErrScale, scale)
	}

	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(ErrSDL, err)
	}

	win := &Window{
		width:  int32(width),
		height: int32(height),
		scale:  int32(scale),
	}

	win.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		win.width*win.scale, win.height*win.scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(ErrSDL, err)
	}

	win.surface, err = newSurface(win)
	if err != nil {
		win.Destroy()
		return nil, err
	}

	win.input = newInput()

	logger.Logf(logger.Allow, "sdl", "window %dx%d (scale %d)", width, height, scale)

	return win, nil
}

// Destroy cleans up the resources. The window must not be used after calling
// Destroy().
func (win *Window) Destroy() {
	if win.surface != nil {
		win.surface.destroy()
		win.surface = nil
	}
	if win.window != nil {
		_ = win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
}

// SetTitle changes the title of the window.
func (win *Window) SetTitle(title string) {
	win.window.SetTitle(title)
}

// SetScale changes the size of the window. The entire frame buffer will be
// redrawn on the next call to Present().
func (win *Window) SetScale(scale int) error {
	if scale < 1 || scale > MaxScale {
		return curated.Errorf(ErrScale, scale)
	}
	win.scale = int32(scale)
	win.window.SetSize(win.width*win.scale, win.height*win.scale)
	win.surface.refresh = true
	logger.Logf(logger.Allow, "sdl", "window scale %d", scale)
	return nil
}

// Surface returns the compositor.Surface implementation for the window.
func (win *Window) Surface() *Surface {
	return win.surface
}

// Input returns the host.Input implementation for the window.
func (win *Window) Input() *Input {
	return win.input
}

// QuitRequested returns true if the user has asked to close the window.
func (win *Window) QuitRequested() bool {
	return win.input.quit
}
