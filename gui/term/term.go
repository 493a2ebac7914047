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

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/logger"
)

// Sentinel error patterns.
const (
	ErrTerm = "term: %v"
)

// Terminal is the terminal frontend.
type Terminal struct {
	screen  tcell.Screen
	surface *Surface
	input   *Input
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The screen will be initialised. If the screen argument is nil then the
// user's terminal is used.
//
// The width and height arguments are the size of the frame buffer. The hold
// argument is the number of polls that a key is held for after it has been
// reported by the terminal.
func NewTerminal(screen tcell.Screen, width, height int, hold int) (*Terminal, error) {
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, curated.Errorf(ErrTerm, err)
		}
	}

	if err := screen.Init(); err != nil {
		return nil, curated.Errorf(ErrTerm, err)
	}

	screen.HideCursor()
	screen.Clear()

	trm := &Terminal{
		screen:  screen,
		surface: newSurface(screen, width, height),
		input:   newInput(screen, hold),
	}

	trm.input.onResize = func() {
		trm.screen.Sync()
		trm.surface.resize()
	}

	cols, rows := screen.Size()
	logger.Logf(logger.Allow, "term", "terminal %dx%d (%d colours)", cols, rows, screen.Colors())

	return trm, nil
}

// Destroy restores the terminal. The Terminal must not be used after calling
// Destroy().
func (trm *Terminal) Destroy() {
	trm.screen.Fini()
}

// Surface returns the compositor.Surface implementation.
func (trm *Terminal) Surface() *Surface {
	return trm.surface
}

// Input returns the host.Input implementation.
func (trm *Terminal) Input() *Input {
	return trm.input
}

// SetHold changes the number of polls a key is held for.
func (trm *Terminal) SetHold(hold int) {
	trm.input.hold = max(hold, 1)
}

// QuitRequested returns true if the user has pressed Ctrl-C.
func (trm *Terminal) QuitRequested() bool {
	return trm.input.quit
}
