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

// Package compositor copies changed regions of the frame buffer to a
// destination Surface.
//
// Only the regions passed to Update() are copied. Each region is copied to
// the same position on the surface, the surface being responsible for turning
// palette indexes into colours with its own colour table. The colour table is
// set with SetPalette().
//
// The copy loop supports a zoom factor. With a zoom of 1 (the normal
// configuration) the surface must be the same size as the frame buffer.
package compositor
