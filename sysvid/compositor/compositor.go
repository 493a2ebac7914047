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

package compositor

import (
	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
	"github.com/xrick-go/xrick/sysvid/palette"
)

// Sentinal error patterns.
const (
	ErrSurfaceLock  = "compositor: cannot lock surface: %v"
	ErrRegionBounds = "compositor: %v"
	ErrZoom         = "compositor: invalid zoom factor (%dx%d)"
	ErrPitch        = "compositor: surface too small for zoomed region %v (pitch %d, %d bytes)"
	ErrPalette      = "compositor: cannot set surface colours: %v"
	ErrPresent      = "compositor: cannot present surface: %v"
	ErrReleased     = "compositor: frame buffer has been released"
)

// Compositor copies regions of the frame buffer to a Surface.
type Compositor struct {
	fb      *framebuffer.FrameBuffer
	surface Surface

	// zoom factors. the destination surface is zoomX times wider and zoomY
	// times taller than the frame buffer
	zoomX int
	zoomY int
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type. A zoom of 1 means the surface is the same size as the frame buffer.
func NewCompositor(fb *framebuffer.FrameBuffer, surface Surface, zoomX, zoomY int) (*Compositor, error) {
	if zoomX < 1 || zoomY < 1 {
		return nil, curated.Errorf(ErrZoom, zoomX, zoomY)
	}
	return &Compositor{
		fb:      fb,
		surface: surface,
		zoomX:   zoomX,
		zoomY:   zoomY,
	}, nil
}

// SetPalette commits the first count colours of the palette to the surface's
// colour table, starting at index zero.
func (cmp *Compositor) SetPalette(p *palette.Palette, count int) error {
	if err := cmp.surface.SetColours(0, p.Slice(count)); err != nil {
		return curated.Errorf(ErrPalette, err)
	}
	return nil
}

// Update copies each region of the frame buffer to the same position on the
// surface, in the order the regions are listed. Overlapping regions are fine:
// the frame buffer is not changing during the call so every copy of a pixel
// is the same value.
//
// An empty list is not an error and nothing happens. An error from Lock()
// stops the update immediately and is returned as ErrSurfaceLock. A region
// outside of the frame buffer is returned as ErrRegionBounds before anything
// of that region is copied.
//
// The regions slice is not retained after Update() returns.
func (cmp *Compositor) Update(regions []framebuffer.Rect) error {
	if len(regions) == 0 {
		return nil
	}

	if !cmp.fb.Valid() {
		return curated.Errorf(ErrReleased)
	}

	for _, r := range regions {
		if err := cmp.fb.Check(r); err != nil {
			return curated.Errorf(ErrRegionBounds, err)
		}
		if err := cmp.region(r); err != nil {
			return err
		}
	}

	if err := cmp.surface.Present(); err != nil {
		return curated.Errorf(ErrPresent, err)
	}

	return nil
}

// region copies a single region. the surface is locked and unlocked for
// every region.
func (cmp *Compositor) region(r framebuffer.Rect) error {
	pixels, pitch, err := cmp.surface.Lock()
	if err != nil {
		return curated.Errorf(ErrSurfaceLock, err)
	}
	defer cmp.surface.Unlock()

	dst := r.Scale(cmp.zoomX, cmp.zoomY)
	if !dst.Empty() && (pitch < dst.X+dst.Width || len(pixels) < (dst.Y+dst.Height-1)*pitch+dst.X+dst.Width) {
		return curated.Errorf(ErrPitch, dst, pitch, len(pixels))
	}

	src := cmp.fb.Pix()
	stride := cmp.fb.Width()

	p0 := r.Y*stride + r.X
	q0 := dst.Y*pitch + dst.X

	// row and column stepping are independent so that the horizontal and
	// vertical zoom factors can differ
	for y := 0; y < r.Height; y++ {
		for yz := 0; yz < cmp.zoomY; yz++ {
			p := p0
			q := q0
			for x := 0; x < r.Width; x++ {
				for xz := 0; xz < cmp.zoomX; xz++ {
					pixels[q] = src[p]
					q++
				}
				p++
			}
			q0 += pitch
		}
		p0 += stride
	}

	cmp.surface.MarkDirty(dst)

	return nil
}
