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

// Package framebuffer implements the software frame buffer. The frame buffer
// is a fixed size grid of 8-bit palette indexes, independent of the format of
// whatever surface it is eventually shown on.
//
// Game logic draws into the frame buffer and then passes the list of changed
// regions (a slice of Rect) to the compositor.
package framebuffer
