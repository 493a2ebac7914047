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

package screenshot_test

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/screenshot"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
	"github.com/xrick-go/xrick/sysvid/palette"
	"github.com/xrick-go/xrick/test"
)

func prepare(t *testing.T) (*framebuffer.FrameBuffer, *palette.Palette) {
	t.Helper()

	fb, err := framebuffer.NewFrameBuffer(16, 10)
	test.DemandSuccess(t, err)

	pal := palette.NewPalette()
	test.DemandSuccess(t, pal.Set([]palette.Entry{{}, {R: 255}, {G: 255}}, 3))

	test.DemandSuccess(t, fb.Fill(framebuffer.Rect{X: 2, Y: 3, Width: 4, Height: 2}, 1))
	fb.SetPixel(15, 9, 2)

	return fb, pal
}

func TestWrite(t *testing.T) {
	fb, pal := prepare(t)

	var buf bytes.Buffer
	test.DemandSuccess(t, screenshot.Write(&buf, fb, pal, 1))

	img, err := png.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 16)
	test.ExpectEquality(t, img.Bounds().Dy(), 10)

	red := color.RGBAModel.Convert(img.At(3, 4)).(color.RGBA)
	test.ExpectEquality(t, red, color.RGBA{R: 255, A: 255})
	green := color.RGBAModel.Convert(img.At(15, 9)).(color.RGBA)
	test.ExpectEquality(t, green, color.RGBA{G: 255, A: 255})
}

func TestScaled(t *testing.T) {
	fb, pal := prepare(t)

	img, err := screenshot.Image(fb, pal, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 48)
	test.ExpectEquality(t, img.Bounds().Dy(), 30)

	// every pixel of the frame buffer is a 3x3 block
	for y := 9; y < 12; y++ {
		for x := 6; x < 9; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			test.ExpectEquality(t, c, color.RGBA{R: 255, A: 255}, x, y)
		}
	}
	c := color.RGBAModel.Convert(img.At(5, 9)).(color.RGBA)
	test.ExpectEquality(t, c, color.RGBA{A: 255})
}

func TestImageIsCopy(t *testing.T) {
	fb, pal := prepare(t)

	img, err := screenshot.Image(fb, pal, 1)
	test.DemandSuccess(t, err)

	fb.Clear()
	c := color.RGBAModel.Convert(img.At(3, 4)).(color.RGBA)
	test.ExpectEquality(t, c, color.RGBA{R: 255, A: 255})
}

func TestErrors(t *testing.T) {
	fb, pal := prepare(t)

	_, err := screenshot.Image(fb, pal, 0)
	test.ExpectSuccess(t, curated.Is(err, screenshot.ErrScale))

	fb.Release()
	_, err = screenshot.Image(fb, pal, 1)
	test.ExpectSuccess(t, curated.Is(err, screenshot.ErrFrameBuffer))
}

func TestSave(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".xrick", 0o700))

	fb, pal := prepare(t)
	path, err := screenshot.Save(fb, pal, 2, "test")
	test.DemandSuccess(t, err)

	f, err := os.Open(path)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 32)
}
