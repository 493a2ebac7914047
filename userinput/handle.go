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

package userinput

import (
	"github.com/xrick-go/xrick/control"
)

// HandleInput is implemented by anything that can respond to game actions.
// The control.State type is the usual implementation.
type HandleInput interface {
	Press(a control.Action)
	Release(a control.Action)
}

// HandleUserInput deciphers the Event and forwards any mapped action to the
// handler. Returns true if the key is in the keymap and false otherwise.
func HandleUserInput(ev Event, keymap Keymap, handle HandleInput) bool {
	a, ok := keymap[ev.Key]
	if !ok {
		return false
	}

	if ev.Down {
		handle.Press(a)
	} else {
		handle.Release(a)
	}

	return true
}
