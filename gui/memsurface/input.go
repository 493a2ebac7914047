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

package memsurface

import (
	"github.com/xrick-go/xrick/host"
)

// ScriptedInput is an implementation of host.Input that replays a list of
// held keys, one entry of the list for every call to PollInput(). Once the
// script has been exhausted no keys are held.
type ScriptedInput struct {
	script [][]host.Key
	tick   int
	held   map[host.Key]bool

	// number of calls to PollInput() and KeyState()
	Polls   int
	Queries int
}

// NewScriptedInput is the preferred method of initialisation for the
// ScriptedInput type.
func NewScriptedInput(script ...[]host.Key) *ScriptedInput {
	return &ScriptedInput{
		script: script,
		held:   make(map[host.Key]bool),
	}
}

// Append adds more entries to the end of the script.
func (in *ScriptedInput) Append(script ...[]host.Key) {
	in.script = append(in.script, script...)
}

// PollInput implements the host.Input interface.
func (in *ScriptedInput) PollInput() {
	in.Polls++
	clear(in.held)
	if in.tick < len(in.script) {
		for _, k := range in.script[in.tick] {
			in.held[k] = true
		}
	}
	in.tick++
}

// KeyState implements the host.Input interface. Only the keyboard device is
// supported.
func (in *ScriptedInput) KeyState(port uint, device host.Device, index uint, id host.Key) bool {
	in.Queries++
	if port != 0 || device != host.DeviceKeyboard || index != 0 {
		return false
	}
	return in.held[id]
}
