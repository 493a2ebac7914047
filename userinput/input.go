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
	"github.com/xrick-go/xrick/logger"
)

// Input combines a Detector with a host, a keymap and the control state.
type Input struct {
	det    *Detector
	host   host.Input
	keymap Keymap
	ctrl   control.State

	// log events if this is not nil
	logEvents logger.Permission
}

// NewInput is the preferred method of initialisation for the Input type. The
// DefaultKeymap is used.
func NewInput(inp host.Input) *Input {
	return &Input{
		det:    NewDetector(),
		host:   inp,
		keymap: DefaultKeymap,
	}
}

// SetKeymap changes the key bindings.
func (in *Input) SetKeymap(keymap Keymap) {
	in.keymap = keymap
}

// LogEvents causes events to be added to the central log when the permission
// allows it. A nil value turns event logging off.
func (in *Input) LogEvents(perm logger.Permission) {
	in.logEvents = perm
}

// Poll queries the host and updates the control state with any press or
// release of a mapped key. It always returns true: a host that has nothing to
// report is treated as all keys being up.
func (in *Input) Poll() bool {
	for _, ev := range in.det.Poll(in.host) {
		mapped := HandleUserInput(ev, in.keymap, &in.ctrl)
		if in.logEvents != nil {
			logger.Logf(in.logEvents, "userinput", "%v (mapped %v) %v", ev, mapped, in.ctrl)
		}
	}
	return true
}

// Control returns the current control state.
func (in *Input) Control() *control.State {
	return &in.ctrl
}

// Events returns the events from the most recent poll, including events for
// keys that are not in the keymap.
func (in *Input) Events() []Event {
	return in.det.Events()
}

// Pressed returns true if the most recent poll included a press of the key.
func (in *Input) Pressed(key host.Key) bool {
	for _, ev := range in.det.Events() {
		if ev.Key == key && ev.Down {
			return true
		}
	}
	return false
}
