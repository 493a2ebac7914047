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

package framebuffer

import (
	"image"
	"image/color"

	"github.com/xrick-go/xrick/curated"
)

// Sentinal error patterns.
const (
	ErrSize   = "framebuffer: invalid size (%dx%d)"
	ErrBounds = "framebuffer: region %v outside of %dx%d"
)

// FrameBuffer is an off-screen store of 8-bit palette indexes. Pixels are
// stored row-major with a stride equal to the width of the buffer.
type FrameBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewFrameBuffer is the preferred method of initialisation for the
// FrameBuffer type. All pixels start as index zero.
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(ErrSize, width, height)
	}
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}, nil
}

// Release the memory used by the frame buffer. The frame buffer is no longer
// valid after this call. Calling Release() more than once has no effect.
func (fb *FrameBuffer) Release() {
	fb.pix = nil
}

// Valid returns false if the frame buffer has been released.
func (fb *FrameBuffer) Valid() bool {
	return fb.pix != nil
}

// Width of frame buffer in pixels.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height of frame buffer in pixels.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Bounds returns the rectangle covering the whole of the frame buffer.
func (fb *FrameBuffer) Bounds() Rect {
	return Rect{Width: fb.width, Height: fb.height}
}

// Contains returns true if the rectangle lies entirely within the frame buffer.
func (fb *FrameBuffer) Contains(r Rect) bool {
	return r.Within(fb.width, fb.height)
}

// Check returns an error if the rectangle is not entirely within the frame
// buffer.
func (fb *FrameBuffer) Check(r Rect) error {
	if !fb.Contains(r) {
		return curated.Errorf(ErrBounds, r, fb.width, fb.height)
	}
	return nil
}

// Clear sets every pixel to palette index zero.
func (fb *FrameBuffer) Clear() {
	clear(fb.pix)
}

// Pix returns the underlying pixel data. Changes to the returned slice are
// changes to the frame buffer.
func (fb *FrameBuffer) Pix() []uint8 {
	return fb.pix
}

// Row returns the pixels for row y. Returns nil if y is out of range.
func (fb *FrameBuffer) Row(y int) []uint8 {
	if !fb.Valid() || y < 0 || y >= fb.height {
		return nil
	}
	return fb.pix[y*fb.width : (y+1)*fb.width]
}

// Pixel returns the palette index at x, y. Coordinates outside the frame
// buffer return zero.
func (fb *FrameBuffer) Pixel(x, y int) uint8 {
	if !fb.Valid() || x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return 0
	}
	return fb.pix[y*fb.width+x]
}

// SetPixel sets the palette index at x, y. Coordinates outside the frame
// buffer are ignored.
func (fb *FrameBuffer) SetPixel(x, y int, idx uint8) {
	if !fb.Valid() || x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.pix[y*fb.width+x] = idx
}

// Fill sets every pixel in the rectangle to the palette index. The rectangle
// must be within the frame buffer.
func (fb *FrameBuffer) Fill(r Rect, idx uint8) error {
	if err := fb.Check(r); err != nil {
		return err
	}
	if !fb.Valid() {
		return nil
	}
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := fb.pix[y*fb.width+r.X : y*fb.width+r.X+r.Width]
		for i := range row {
			row[i] = idx
		}
	}
	return nil
}

// Image returns an image.Paletted that shares its pixels with the frame
// buffer. Changes to the frame buffer are seen in the image.
func (fb *FrameBuffer) Image(p color.Palette) *image.Paletted {
	return &image.Paletted{
		Pix:     fb.pix,
		Stride:  fb.width,
		Rect:    image.Rect(0, 0, fb.width, fb.height),
		Palette: p,
	}
}
