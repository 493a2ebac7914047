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

package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/logger"
	"github.com/xrick-go/xrick/resources"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
	"github.com/xrick-go/xrick/sysvid/palette"
)

// Sentinel error patterns.
const (
	ErrScale       = "screenshot: invalid scale (%d)"
	ErrFrameBuffer = "screenshot: frame buffer is not valid"
	ErrSave        = "screenshot: %v"
)

// MaxScale is the largest supported scale.
const MaxScale = 8

// Image returns an image of the frame buffer as seen through the palette,
// enlarged by the scale value. The returned image does not share memory with
// the frame buffer.
func Image(fb *framebuffer.FrameBuffer, pal *palette.Palette, scale int) (image.Image, error) {
	if !fb.Valid() {
		return nil, curated.Errorf(ErrFrameBuffer)
	}
	if scale < 1 || scale > MaxScale {
		return nil, curated.Errorf(ErrScale, scale)
	}

	src := fb.Image(pal.Colours())

	if scale == 1 {
		dst := image.NewPaletted(src.Rect, src.Palette)
		copy(dst.Pix, src.Pix)
		return dst, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, src.Rect.Dx()*scale, src.Rect.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Write a PNG image of the frame buffer to the io.Writer.
func Write(w io.Writer, fb *framebuffer.FrameBuffer, pal *palette.Palette, scale int) error {
	img, err := Image(fb, pal, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return curated.Errorf(ErrSave, err)
	}
	return nil
}

// Save a PNG image of the frame buffer to a new file in the screenshots
// resource directory. The label is included in the filename. Returns the
// path of the new file.
func Save(fb *framebuffer.FrameBuffer, pal *palette.Palette, scale int, label string) (string, error) {
	path, err := resources.JoinPath("screenshots", fmt.Sprintf("%s.png", resources.UniqueFilename("xrick", label)))
	if err != nil {
		return "", curated.Errorf(ErrSave, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", curated.Errorf(ErrSave, err)
	}

	err = Write(f, fb, pal, scale)
	if err != nil {
		_ = f.Close()
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", curated.Errorf(ErrSave, err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)

	return path, nil
}
