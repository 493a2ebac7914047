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

package term

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/xrick-go/xrick/host"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
	"github.com/xrick-go/xrick/test"
)

func simulation(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	test.DemandSuccess(t, scr.Init())
	scr.SetSize(cols, rows)
	return scr
}

func TestTranslate(t *testing.T) {
	k, ok := translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, host.KeyUp)

	k, ok = translate(tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModNone))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, host.Key('p'))

	k, ok = translate(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, host.KeySpace)

	k, ok = translate(tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, host.KeyF12)

	_, ok = translate(tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl))
	test.ExpectFailure(t, ok)
}

func TestHold(t *testing.T) {
	in := newInput(nil, 3)

	in.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, in.KeyState(0, host.DeviceKeyboard, 0, host.KeyLeft), i)
		in.tick()
	}
	test.ExpectFailure(t, in.KeyState(0, host.DeviceKeyboard, 0, host.KeyLeft))

	// auto-repeat keeps the key held
	in.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	in.tick()
	in.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	in.tick()
	in.tick()
	test.ExpectSuccess(t, in.KeyState(0, host.DeviceKeyboard, 0, host.KeyLeft))

	// other devices are never held
	test.ExpectFailure(t, in.KeyState(0, host.DeviceJoypad, 0, host.KeyLeft))
}

func TestQuit(t *testing.T) {
	in := newInput(nil, 1)
	in.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	test.ExpectSuccess(t, in.quit)
}

func TestSurface(t *testing.T) {
	scr := simulation(t, 8, 2)
	defer scr.Fini()

	s := newSurface(scr, 8, 4)
	test.ExpectEquality(t, s.step, 1)

	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	test.DemandSuccess(t, s.SetColours(0, []color.RGBA{{A: 255}, red, blue}))

	pix, pitch, err := s.Lock()
	test.DemandSuccess(t, err)
	pix[0*pitch+1] = 1
	pix[1*pitch+1] = 2
	s.Unlock()
	s.MarkDirty(framebuffer.Rect{X: 1, Y: 0, Width: 1, Height: 2})
	test.DemandSuccess(t, s.Present())

	cells, w, h := scr.GetContents()
	test.DemandEquality(t, w, 8)
	test.DemandEquality(t, h, 2)

	c := cells[1]
	test.DemandEquality(t, len(c.Runes), 1)
	test.ExpectEquality(t, c.Runes[0], halfBlock)
	test.ExpectEquality(t, c.Style, tcell.StyleDefault.Foreground(rgb(red)).Background(rgb(blue)))
}

func TestSurfaceStep(t *testing.T) {
	scr := simulation(t, 80, 25)
	defer scr.Fini()

	// 320 columns need a step of four to fit in 80 columns
	s := newSurface(scr, 320, 200)
	test.ExpectEquality(t, s.step, 4)
}
