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

package control

import "strings"

// Action is a logical game action. Actions are single bits so that the set of
// currently active actions can be held in one Action value.
type Action uint8

// List of valid Action values.
const (
	Up    Action = 0x01
	Down  Action = 0x02
	Left  Action = 0x04
	Right Action = 0x08
	Pause Action = 0x10
	End   Action = 0x20
	Exit  Action = 0x40
	Fire  Action = 0x80

	None Action = 0x00
)

// Actions lists every action in bit order.
var Actions = []Action{Up, Down, Left, Right, Pause, End, Exit, Fire}

var actionNames = map[Action]string{
	Up:    "UP",
	Down:  "DOWN",
	Left:  "LEFT",
	Right: "RIGHT",
	Pause: "PAUSE",
	End:   "END",
	Exit:  "EXIT",
	Fire:  "FIRE",
}

func (a Action) String() string {
	if a == None {
		return "NONE"
	}
	if n, ok := actionNames[a]; ok {
		return n
	}

	// a combination of actions
	s := make([]string, 0, len(Actions))
	for _, b := range Actions {
		if a&b == b {
			s = append(s, actionNames[b])
		}
	}
	return strings.Join(s, "|")
}

// State is the set of currently active actions and the action that most
// recently changed.
//
// State is changed by the userinput package in response to key presses and
// releases. Game logic should otherwise treat it as read-only, except for
// Reset().
type State struct {
	Status Action
	Last   Action
}

func (st State) String() string {
	return st.Status.String()
}

// Press marks the action as active and records it as the last action.
func (st *State) Press(a Action) {
	st.Status |= a
	st.Last = a
}

// Release marks the action as inactive. Note that the action is recorded as
// the last action even though it is being released.
func (st *State) Release(a Action) {
	st.Status &^= a
	st.Last = a
}

// Active returns true if every bit of a is set.
func (st State) Active(a Action) bool {
	return st.Status&a == a && a != None
}

// Reset clears all actions.
func (st *State) Reset() {
	st.Status = None
	st.Last = None
}
