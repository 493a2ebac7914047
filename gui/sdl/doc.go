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

// Package sdl is the SDL frontend. It opens a window and provides an
// implementation of compositor.Surface (through the Window.Surface() function)
// and host.Input.
//
// The surface is an 8-bit paletted SDL surface the same size as the frame
// buffer. Dirty regions are blitted (and scaled) to the window surface when
// the compositor calls Present().
//
// All functions must be called from the main thread. NewWindow() calls
// runtime.LockOSThread() but it is up to the caller to make sure that
// NewWindow() is called from the main goroutine.
package sdl
