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

// Package sysvid is the video system of the game. It brings together the
// frame buffer, the palette and the compositor, and presents them as one
// Video type.
//
// A typical frame looks like this:
//
//	vid.Clear()
//	// draw into vid.FrameBuffer()
//	vid.Update(regions)
//
// Errors in Update() mean that the display is no longer usable. They are not
// returned to the caller but are passed to the fatal handler, which by default
// logs the error and terminates the program. See SetFatalHandler().
package sysvid
