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

// Package userinput handles input from the real keyboard that the player is
// using to control the game.
//
// The host only tells us whether a key is held down at the moment we ask (a
// level). The game wants to know when keys are pressed and released (an
// edge). The Detector type keeps the state of every key from the previous
// poll and emits an Event for every key whose state has changed.
//
// Events for keys in the Keymap are then applied to a control.State with
// HandleUserInput(). The Input type bundles all of this together and is what
// most frontends will use:
//
//	inp := userinput.NewInput(host)
//	for {
//		inp.Poll()
//		if inp.Control().Active(control.Exit) {
//			break
//		}
//		...
//	}
package userinput
