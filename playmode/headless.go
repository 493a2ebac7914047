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

package playmode

import (
	"fmt"
	"io"
	"time"

	"github.com/xrick-go/xrick/gui/memsurface"
	"github.com/xrick-go/xrick/host"
	"github.com/xrick-go/xrick/performance"
	"github.com/xrick-go/xrick/sysvid"
)

// the size of the surface required by the video system
const (
	surfaceWidth  = sysvid.Width * sysvid.Zoom
	surfaceHeight = sysvid.Height * sysvid.Zoom
)

// DemoScript returns a script of held keys that exercises every action of
// the demonstration scene, ending with the exit action.
func DemoScript() [][]host.Key {
	var script [][]host.Key

	repeat := func(n int, keys ...host.Key) {
		for range n {
			script = append(script, keys)
		}
	}

	repeat(1)
	repeat(30, host.KeyRight)
	repeat(1, host.KeySpace)
	repeat(20, host.KeyDown)
	repeat(1, 'p')
	repeat(10, host.KeyLeft)
	repeat(1, 'p')
	repeat(30, host.KeyLeft, host.KeyUp)
	repeat(1, host.KeySpace, host.KeyF12)
	repeat(1, 'e')
	repeat(5)
	repeat(1, host.KeyEscape)

	return script
}

// Headless runs the game without a display, using a memory surface and the
// scripted input of DemoScript(). It runs for the number of frames, or until
// the script ends the game, and prints a summary to output.
//
// If dump is not nil the state of the loop is written to it with DumpState()
// once the frames have been run.
func Headless(output io.Writer, dump io.Writer, prf *Preferences, frames int) error {
	surface := memsurface.NewSurface(surfaceWidth, surfaceHeight)

	lp, err := NewLoop(prf, surface, memsurface.NewScriptedInput(DemoScript()...))
	if err != nil {
		return err
	}
	defer lp.End()

	for range frames {
		if !lp.Tick() {
			break
		}
	}

	fmt.Fprintf(output, "%d frames (%d presents). block %v colour %d\n",
		lp.Frames(), surface.Presents(), lp.Scene().Block(), lp.Scene().Colour())

	if dump != nil {
		lp.DumpState(dump)
	}

	return nil
}

// Performance runs the game without a display for the duration and reports
// the frame rate. Profiles are created as specified.
func Performance(output io.Writer, prf *Preferences, profile performance.Profile, duration time.Duration) error {
	surface := memsurface.NewSurface(surfaceWidth, surfaceHeight)

	// the script is repeated until the duration expires. the exit key is
	// dropped so that the game doesn't end
	script := DemoScript()
	script = script[:len(script)-1]
	inp := memsurface.NewScriptedInput()

	lp, err := NewLoop(prf, surface, inp)
	if err != nil {
		return err
	}
	defer lp.End()

	frame := func() (bool, error) {
		if inp.Polls%len(script) == 0 {
			inp.Append(script...)
		}
		return lp.Tick(), nil
	}

	return performance.Check(output, profile, frame, prf.FPS.Get().(int), duration)
}
