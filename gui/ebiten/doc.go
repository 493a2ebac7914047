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

// Package ebiten is a frontend using the Ebitengine game library. It is an
// alternative to the SDL frontend that doesn't need cgo on most platforms.
//
// Ebitengine owns the main loop. The Game type implements ebiten.Game and
// calls the supplied tick function once for every call to Update(). The tick
// function should poll input, run the game logic and update the video.
//
// The Surface type keeps the palette indexed pixels in memory. Presented
// regions are converted to RGBA and written to an ebiten.Image the next time
// Draw() is called.
package ebiten
