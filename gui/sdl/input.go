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

package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/xrick-go/xrick/host"
	"github.com/xrick-go/xrick/logger"
)

// Input implements the host.Input interface using SDL's keyboard state.
type Input struct {
	// keyboard state as returned by sdl.GetKeyboardState(). SDL updates the
	// array when events are pumped
	state []uint8

	// translation from host key to SDL scancode
	scancodes map[host.Key]sdl.Scancode

	// the window has been asked to close
	quit bool
}

func newInput() *Input {
	return &Input{
		state:     sdl.GetKeyboardState(),
		scancodes: scancodes(),
	}
}

// PollInput implements the host.Input interface.
func (in *Input) PollInput() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			in.quit = true
			logger.Log(logger.Allow, "sdl", "quit requested")
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				in.quit = true
			}
		}
	}
}

// KeyState implements the host.Input interface.
func (in *Input) KeyState(port uint, device host.Device, index uint, id host.Key) bool {
	if port != 0 || device != host.DeviceKeyboard || index != 0 {
		return false
	}
	sc, ok := in.scancodes[id]
	if !ok || int(sc) >= len(in.state) {
		return false
	}
	return in.state[sc] != 0
}
