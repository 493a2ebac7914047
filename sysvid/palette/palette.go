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

package palette

import (
	"image/color"

	"github.com/xrick-go/xrick/curated"
)

// Size is the number of entries in a palette.
const Size = 256

// Sentinal error patterns.
const (
	ErrCount = "palette: invalid count (%d) for %d entries"
)

// Entry is a single RGB triple.
type Entry struct {
	R, G, B uint8
}

// RGBA returns the entry as an opaque color.RGBA.
func (e Entry) RGBA() color.RGBA {
	return color.RGBA{R: e.R, G: e.G, B: e.B, A: 255}
}

// Palette maps 8-bit pixel indexes to colours. Only a contiguous prefix of
// the palette is defined: the count given to the most recent call to Set().
// Colours beyond that keep whatever value they had before.
type Palette struct {
	colours [Size]color.RGBA
	defined int
}

// NewPalette is the preferred method of initialisation for the Palette type.
// Every entry starts as opaque black and none are defined.
func NewPalette() *Palette {
	p := &Palette{}
	for i := range p.colours {
		p.colours[i] = color.RGBA{A: 255}
	}
	return p
}

// Set copies count entries into the palette, starting at index zero. Entries
// at count and above are not changed.
func (p *Palette) Set(entries []Entry, count int) error {
	if count < 0 || count > Size || count > len(entries) {
		return curated.Errorf(ErrCount, count, len(entries))
	}
	for i := 0; i < count; i++ {
		p.colours[i] = entries[i].RGBA()
	}
	p.defined = count
	return nil
}

// Defined returns the number of entries set by the most recent call to Set().
func (p *Palette) Defined() int {
	return p.defined
}

// Colour returns the colour for the palette index.
func (p *Palette) Colour(idx uint8) color.RGBA {
	return p.colours[idx]
}

// Slice returns the first count colours of the palette. The returned slice
// is a copy.
func (p *Palette) Slice(count int) []color.RGBA {
	count = min(max(count, 0), Size)
	s := make([]color.RGBA, count)
	copy(s, p.colours[:count])
	return s
}

// Colours returns the entire palette as a color.Palette, suitable for use
// with image.Paletted.
func (p *Palette) Colours() color.Palette {
	c := make(color.Palette, Size)
	for i := range p.colours {
		c[i] = p.colours[i]
	}
	return c
}
