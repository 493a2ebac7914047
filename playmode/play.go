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

	"github.com/bradleyjkemp/memviz"

	"github.com/xrick-go/xrick/control"
	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/host"
	"github.com/xrick-go/xrick/logger"
	"github.com/xrick-go/xrick/performance/limiter"
	"github.com/xrick-go/xrick/screenshot"
	"github.com/xrick-go/xrick/sysvid"
	"github.com/xrick-go/xrick/sysvid/compositor"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
	"github.com/xrick-go/xrick/userinput"
)

// Sentinel error patterns.
const (
	ErrPlay = "playmode: %v"
)

// ScreenshotKey saves a screenshot when it is pressed.
const ScreenshotKey = host.KeyF12

// Loop ties together the video, the input and the game logic.
type Loop struct {
	prefs *Preferences

	vid   *sysvid.Video
	inp   *userinput.Input
	scene *Scene

	// number of calls to Tick()
	frames int

	// path of the most recent screenshot
	lastScreenshot string
}

// NewLoop is the preferred method of initialisation for the Loop type.
//
// The video system is created with the supplied surface and the palette is
// set according to the preferences. An error from NewLoop() should be
// treated as fatal.
func NewLoop(prf *Preferences, surface compositor.Surface, inp host.Input) (*Loop, error) {
	tbl, err := prf.Table()
	if err != nil {
		return nil, err
	}

	vid, err := sysvid.NewVideo(surface)
	if err != nil {
		return nil, curated.Errorf(ErrPlay, err)
	}

	if err := vid.SetGamePalette(tbl); err != nil {
		vid.Shutdown()
		return nil, curated.Errorf(ErrPlay, err)
	}

	lp := &Loop{
		prefs: prf,
		vid:   vid,
		inp:   userinput.NewInput(inp),
		scene: NewScene(vid.FrameBuffer(), tbl.Len()),
	}

	logger.Logf(logger.Allow, "playmode", "colour table %s", tbl.Name)

	return lp, nil
}

// Video returns the video system used by the loop.
func (lp *Loop) Video() *sysvid.Video {
	return lp.vid
}

// Input returns the user input used by the loop.
func (lp *Loop) Input() *userinput.Input {
	return lp.inp
}

// Scene returns the game logic.
func (lp *Loop) Scene() *Scene {
	return lp.scene
}

// Frames returns the number of frames that have been run.
func (lp *Loop) Frames() int {
	return lp.frames
}

// LastScreenshot returns the filename of the most recent screenshot. Empty if
// no screenshot has been taken.
func (lp *Loop) LastScreenshot() string {
	return lp.lastScreenshot
}

// Tick runs a single frame. Returns false if the game has ended.
//
// Failures of the video system are not returned. They are passed to the
// video's fatal handler.
func (lp *Loop) Tick() bool {
	lp.inp.Poll()

	regions, running := lp.scene.Tick(lp.inp.Control())
	if !running {
		logger.Log(logger.Allow, "playmode", "exit requested")
		return false
	}

	lp.vid.Update(regions)
	lp.frames++

	if lp.inp.Pressed(ScreenshotKey) {
		lp.screenshot()
	}

	return true
}

// screenshot failures are logged but are otherwise not an error
func (lp *Loop) screenshot() {
	scale := lp.prefs.ScreenshotScale.Get().(int)
	pth, err := screenshot.Save(lp.vid.FrameBuffer(), lp.vid.Palette(), scale, lp.prefs.Palette.String())
	if err != nil {
		logger.Logf(logger.Allow, "playmode", "%v", err)
		return
	}
	lp.lastScreenshot = pth
}

// Run the loop until the game ends or the quit function returns true. The
// quit function can be nil. The rate of the loop is limited by the FPS
// preference.
func (lp *Loop) Run(quit func() bool) error {
	lim, err := limiter.NewFPSLimiter(lp.prefs.FPS.Get().(int))
	if err != nil {
		return curated.Errorf(ErrPlay, err)
	}
	defer lim.Stop()

	for {
		if quit != nil && quit() {
			logger.Log(logger.Allow, "playmode", "quit")
			return nil
		}

		lim.Wait()

		if !lp.Tick() {
			return nil
		}
	}
}

// End the loop, releasing the video system.
func (lp *Loop) End() {
	logger.Logf(logger.Allow, "playmode", "ended after %d frames", lp.frames)
	lp.vid.Shutdown()
}

// the state that is written by DumpState()
type state struct {
	Control *control.State
	Block   framebuffer.Rect
	Colour  uint8
	Paused  bool
	Palette []string
	Frames  int
}

// DumpState writes a graph of the loop's state in the DOT language to the
// io.Writer.
func (lp *Loop) DumpState(w io.Writer) {
	st := &state{
		Control: lp.inp.Control(),
		Block:   lp.scene.Block(),
		Colour:  lp.scene.Colour(),
		Paused:  lp.scene.Paused(),
		Frames:  lp.frames,
	}

	pal := lp.vid.Palette()
	for i := 0; i < pal.Defined(); i++ {
		c := pal.Colour(uint8(i))
		st.Palette = append(st.Palette, fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}

	memviz.Map(w, st)
}

