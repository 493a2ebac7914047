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
	"github.com/xrick-go/xrick/control"
	"github.com/xrick-go/xrick/sysvid/framebuffer"
)

// Scene dimensions.
const (
	blockSize  = 16
	blockSpeed = 2
	borderSize = 4
)

// Scene is the demonstration game logic. It draws into a frame buffer and
// reports the regions that have changed.
type Scene struct {
	fb *framebuffer.FrameBuffer

	// the number of colours that can be used. index zero is the background
	colours int

	// the position of the block
	block framebuffer.Rect

	// the palette index of the block
	colour uint8

	paused bool

	// the scene has been drawn at least once
	drawn bool

	// the control status on the previous tick. used to detect presses
	prev control.Action

	// regions returned by the most recent Tick(). the backing array is reused
	regions []framebuffer.Rect
}

// NewScene is the preferred method of initialisation for the Scene type. The
// colours argument is the number of palette entries that have been defined.
func NewScene(fb *framebuffer.FrameBuffer, colours int) *Scene {
	scn := &Scene{
		fb:      fb,
		colours: max(colours, 2),
		colour:  1,
		regions: make([]framebuffer.Rect, 0, 2),
	}
	scn.block = scn.home()
	return scn
}

// home returns the position of the block at the centre of the screen.
func (scn *Scene) home() framebuffer.Rect {
	return framebuffer.Rect{
		X:      (scn.fb.Width() - blockSize) / 2,
		Y:      (scn.fb.Height() - blockSize) / 2,
		Width:  blockSize,
		Height: blockSize,
	}
}

// Block returns the position of the block.
func (scn *Scene) Block() framebuffer.Rect {
	return scn.block
}

// Colour returns the palette index of the block.
func (scn *Scene) Colour() uint8 {
	return scn.colour
}

// Paused returns true if the scene is paused.
func (scn *Scene) Paused() bool {
	return scn.paused
}

// Tick advances the scene by one frame. It returns the regions of the frame
// buffer that have changed and false if the exit action is active.
//
// The returned slice is only valid until the next call to Tick().
func (scn *Scene) Tick(ctrl *control.State) ([]framebuffer.Rect, bool) {
	scn.regions = scn.regions[:0]

	pressed := ctrl.Status &^ scn.prev
	scn.prev = ctrl.Status

	if ctrl.Active(control.Exit) {
		return scn.regions, false
	}

	if !scn.drawn {
		scn.drawn = true
		scn.drawAll()
		scn.regions = append(scn.regions, scn.fb.Bounds())
		return scn.regions, true
	}

	if pressed&control.Pause == control.Pause {
		scn.paused = !scn.paused
	}
	if scn.paused {
		return scn.regions, true
	}

	old := scn.block
	recolour := false

	if pressed&control.End == control.End {
		scn.block = scn.home()
	}

	if pressed&control.Fire == control.Fire {
		scn.colour++
		if int(scn.colour) >= scn.colours {
			scn.colour = 1
		}
		recolour = true
	}

	scn.move(ctrl)

	if old == scn.block && !recolour {
		return scn.regions, true
	}

	_ = scn.fb.Fill(old, 0)
	_ = scn.fb.Fill(scn.block, scn.colour)

	if overlap := old.Intersect(scn.block); !overlap.Empty() {
		// one region covering both positions
		scn.regions = append(scn.regions, union(old, scn.block))
	} else {
		scn.regions = append(scn.regions, old, scn.block)
	}

	return scn.regions, true
}

// move the block according to the direction actions. the block stays inside
// the border.
func (scn *Scene) move(ctrl *control.State) {
	if ctrl.Active(control.Left) {
		scn.block.X -= blockSpeed
	}
	if ctrl.Active(control.Right) {
		scn.block.X += blockSpeed
	}
	if ctrl.Active(control.Up) {
		scn.block.Y -= blockSpeed
	}
	if ctrl.Active(control.Down) {
		scn.block.Y += blockSpeed
	}

	scn.block.X = min(max(scn.block.X, borderSize), scn.fb.Width()-borderSize-blockSize)
	scn.block.Y = min(max(scn.block.Y, borderSize), scn.fb.Height()-borderSize-blockSize)
}

// drawAll draws the background, the border and the block.
func (scn *Scene) drawAll() {
	w := scn.fb.Width()
	h := scn.fb.Height()
	border := uint8(scn.colours - 1)

	scn.fb.Clear()
	_ = scn.fb.Fill(framebuffer.Rect{Width: w, Height: borderSize}, border)
	_ = scn.fb.Fill(framebuffer.Rect{Y: h - borderSize, Width: w, Height: borderSize}, border)
	_ = scn.fb.Fill(framebuffer.Rect{Width: borderSize, Height: h}, border)
	_ = scn.fb.Fill(framebuffer.Rect{X: w - borderSize, Width: borderSize, Height: h}, border)
	_ = scn.fb.Fill(scn.block, scn.colour)
}

// union returns the smallest rectangle containing both rectangles.
func union(a, b framebuffer.Rect) framebuffer.Rect {
	x0 := min(a.X, b.X)
	y0 := min(a.Y, b.Y)
	x1 := max(a.X+a.Width, b.X+b.Width)
	y1 := max(a.Y+a.Height, b.Y+b.Height)
	return framebuffer.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
