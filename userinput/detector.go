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
	"github.com/xrick-go/xrick/host"
)

// KeyState is the state of a single key.
type KeyState uint8

// List of valid KeyState values.
const (
	StateUp KeyState = iota
	StateDown
)

func (s KeyState) String() string {
	if s == StateDown {
		return "down"
	}
	return "up"
}

// Event is emitted when a key changes state.
type Event struct {
	Key  host.Key
	Down bool
}

func (ev Event) String() string {
	if ev.Down {
		return ev.Key.String() + " pressed"
	}
	return ev.Key.String() + " released"
}

// Detector turns the level of each key (held or not held) into press and
// release events.
type Detector struct {
	// the state of each key as queried in the most recent poll
	current [host.MaxKeys]KeyState

	// the state of each key in the poll before that
	previous [host.MaxKeys]KeyState

	// events from the most recent poll. the backing array is reused
	events []Event
}

// NewDetector is the preferred method of initialisation for the Detector
// type. All keys start in the up state.
func NewDetector() *Detector {
	return &Detector{
		events: make([]Event, 0, 16),
	}
}

// Poll refreshes the host's input and queries every key. It returns the
// events for the keys that have changed state since the previous poll, in key
// order.
//
// The returned slice is only valid until the next call to Poll().
func (det *Detector) Poll(inp host.Input) []Event {
	det.events = det.events[:0]

	inp.PollInput()

	for k := 0; k < host.PolledKeys; k++ {
		key := host.Key(k)

		if inp.KeyState(0, host.DeviceKeyboard, 0, key) {
			det.current[k] = StateDown
		} else {
			det.current[k] = StateUp
		}

		switch {
		case det.current[k] == StateDown && det.previous[k] == StateUp:
			det.events = append(det.events, Event{Key: key, Down: true})
		case det.current[k] == StateUp && det.previous[k] == StateDown:
			det.events = append(det.events, Event{Key: key, Down: false})
		}

		det.previous[k] = det.current[k]
	}

	return det.events
}

// State returns the state of the key as of the most recent poll.
func (det *Detector) State(key host.Key) KeyState {
	if int(key) >= len(det.current) {
		return StateUp
	}
	return det.current[key]
}

// Events returns the events from the most recent poll.
func (det *Detector) Events() []Event {
	return det.events
}
