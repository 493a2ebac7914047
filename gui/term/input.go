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
	"github.com/gdamore/tcell/v2"

	"github.com/xrick-go/xrick/host"
	"github.com/xrick-go/xrick/logger"
)

// translation of tcell's special keys
var keys = map[tcell.Key]host.Key{
	tcell.KeyUp:         host.KeyUp,
	tcell.KeyDown:       host.KeyDown,
	tcell.KeyLeft:       host.KeyLeft,
	tcell.KeyRight:      host.KeyRight,
	tcell.KeyEscape:     host.KeyEscape,
	tcell.KeyEnter:      host.KeyReturn,
	tcell.KeyTab:        host.KeyTab,
	tcell.KeyBackspace:  host.KeyBackspace,
	tcell.KeyBackspace2: host.KeyBackspace,
	tcell.KeyDelete:     host.KeyDelete,
	tcell.KeyInsert:     host.KeyInsert,
	tcell.KeyHome:       host.KeyHome,
	tcell.KeyEnd:        host.KeyEnd,
	tcell.KeyPgUp:       host.KeyPageUp,
	tcell.KeyPgDn:       host.KeyPageDown,
	tcell.KeyF1:         host.KeyF1,
	tcell.KeyF2:         host.KeyF1 + 1,
	tcell.KeyF3:         host.KeyF1 + 2,
	tcell.KeyF4:         host.KeyF1 + 3,
	tcell.KeyF5:         host.KeyF1 + 4,
	tcell.KeyF6:         host.KeyF1 + 5,
	tcell.KeyF7:         host.KeyF1 + 6,
	tcell.KeyF8:         host.KeyF1 + 7,
	tcell.KeyF9:         host.KeyF1 + 8,
	tcell.KeyF10:        host.KeyF1 + 9,
	tcell.KeyF11:        host.KeyF1 + 10,
	tcell.KeyF12:        host.KeyF12,
}

// translate a tcell key event into a host key.
func translate(ev *tcell.EventKey) (host.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		return host.KeyRune(ev.Rune())
	}
	k, ok := keys[ev.Key()]
	return k, ok
}

// Input implements the host.Input interface.
type Input struct {
	screen tcell.Screen

	// number of polls remaining for each key
	held [host.MaxKeys]int

	// number of polls a key is held for when it is reported
	hold int

	// Ctrl-C has been pressed
	quit bool

	// called when the terminal is resized
	onResize func()
}

func newInput(screen tcell.Screen, hold int) *Input {
	return &Input{
		screen: screen,
		hold:   max(hold, 1),
	}
}

// PollInput implements the host.Input interface.
func (in *Input) PollInput() {
	in.tick()
	for in.screen.HasPendingEvent() {
		in.handle(in.screen.PollEvent())
	}
}

// tick counts down the held keys.
func (in *Input) tick() {
	for k := range in.held {
		if in.held[k] > 0 {
			in.held[k]--
		}
	}
}

// handle a single event from the terminal.
func (in *Input) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			in.quit = true
			logger.Log(logger.Allow, "term", "quit requested")
			return
		}
		if k, ok := translate(ev); ok {
			in.held[k] = in.hold
		}
	case *tcell.EventResize:
		if in.onResize != nil {
			in.onResize()
		}
	}
}

// KeyState implements the host.Input interface.
func (in *Input) KeyState(port uint, device host.Device, index uint, id host.Key) bool {
	if port != 0 || device != host.DeviceKeyboard || index != 0 {
		return false
	}
	if int(id) >= len(in.held) {
		return false
	}
	return in.held[id] > 0
}
