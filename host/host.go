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

package host

// Device identifies the class of input device being queried.
type Device uint

// List of valid Device values. Only the keyboard is used by this package's
// users but the other classes are listed so that hosts can reject them.
const (
	DeviceNone     Device = 0
	DeviceJoypad   Device = 1
	DeviceMouse    Device = 2
	DeviceKeyboard Device = 3
)

// Capacity of the key-state tables and the number of key identifiers that are
// queried on every poll.
const (
	MaxKeys    = 512
	PolledKeys = 320
)

// Input is implemented by whatever is hosting the game and is the source of
// raw key state.
type Input interface {
	// PollInput tells the host to refresh its input state. It is called
	// once at the start of every poll, before any call to KeyState().
	PollInput()

	// KeyState returns true if the key is currently held down. A host that
	// has no information about a key should return false.
	KeyState(port uint, device Device, index uint, id Key) bool
}
