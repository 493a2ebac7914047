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

// Package term is a frontend that draws the game in a terminal window, using
// the tcell package.
//
// Two pixels are drawn in every character cell by using the upper half block
// character with different foreground and background colours. If the terminal
// is too small to show the frame buffer at that size then pixels are skipped.
// Terminal output is best with a terminal that supports true colour.
//
// Terminals don't report key releases. A key is considered to be held for a
// fixed number of polls after the terminal reports it. Keyboard auto-repeat
// will keep the key held for as long as it is held down.
package term
