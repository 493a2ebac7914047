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
)

// named keys that don't share a value with the SDL keycode
var namedKeys = map[host.Key]sdl.Scancode{
	host.KeyUp:       sdl.SCANCODE_UP,
	host.KeyDown:     sdl.SCANCODE_DOWN,
	host.KeyRight:    sdl.SCANCODE_RIGHT,
	host.KeyLeft:     sdl.SCANCODE_LEFT,
	host.KeyInsert:   sdl.SCANCODE_INSERT,
	host.KeyHome:     sdl.SCANCODE_HOME,
	host.KeyEnd:      sdl.SCANCODE_END,
	host.KeyPageUp:   sdl.SCANCODE_PAGEUP,
	host.KeyPageDown: sdl.SCANCODE_PAGEDOWN,
	host.KeyRShift:   sdl.SCANCODE_RSHIFT,
	host.KeyLShift:   sdl.SCANCODE_LSHIFT,
	host.KeyRCtrl:    sdl.SCANCODE_RCTRL,
	host.KeyLCtrl:    sdl.SCANCODE_LCTRL,
	host.KeyRAlt:     sdl.SCANCODE_RALT,
	host.KeyLAlt:     sdl.SCANCODE_LALT,
}

// scancodes builds the translation table from host key to SDL scancode.
//
// keys below 128 have the same value as the SDL keycode, so SDL is asked for
// the scancode. function keys are consecutive in both numbering schemes.
func scancodes() map[host.Key]sdl.Scancode {
	t := make(map[host.Key]sdl.Scancode)

	for k := host.Key(1); k < 128; k++ {
		sc := sdl.GetScancodeFromKey(sdl.Keycode(k))
		if sc != sdl.SCANCODE_UNKNOWN {
			t[k] = sc
		}
	}

	for k := host.KeyF1; k <= host.KeyF12; k++ {
		t[k] = sdl.Scancode(sdl.SCANCODE_F1) + sdl.Scancode(k-host.KeyF1)
	}

	for k, sc := range namedKeys {
		t[k] = sc
	}

	return t
}
