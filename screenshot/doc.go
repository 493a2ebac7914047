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

// Package screenshot saves the contents of the frame buffer as a PNG image.
// The palette indices of the frame buffer are converted to colours using the
// palette that is current at the time of the screenshot.
//
// Images can be enlarged by an integer scale. Scaling uses nearest neighbour
// sampling so that pixels remain sharp.
package screenshot
