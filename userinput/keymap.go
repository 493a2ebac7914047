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
	"github.com/xrick-go/xrick/host"
)

// Keymap is the mapping of keys to game actions.
type Keymap map[host.Key]control.Action

// DefaultKeymap is the key binding used by the game.
var DefaultKeymap = Keymap{
	host.KeyUp:     control.Up,
	host.KeyDown:   control.Down,
	host.KeyLeft:   control.Left,
	host.KeyRight:  control.Right,
	host.KeySpace:  control.Fire,
	'p':            control.Pause,
	'e':            control.End,
	host.KeyEscape: control.Exit,
}
