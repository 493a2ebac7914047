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

import "fmt"

// Key identifies a key on the keyboard. The numbering follows the libretro
// keyboard identifiers: printable keys have their ASCII (lower case) value and
// the cursor, function and modifier keys are numbered from 256.
type Key uint16

// List of named keys.
const (
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyReturn    Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = 32
	KeyDelete    Key = 127

	KeyUp       Key = 273
	KeyDown     Key = 274
	KeyRight    Key = 275
	KeyLeft     Key = 276
	KeyInsert   Key = 277
	KeyHome     Key = 278
	KeyEnd      Key = 279
	KeyPageUp   Key = 280
	KeyPageDown Key = 281

	KeyF1  Key = 282
	KeyF12 Key = 293

	KeyRShift Key = 303
	KeyLShift Key = 304
	KeyRCtrl  Key = 305
	KeyLCtrl  Key = 306
	KeyRAlt   Key = 307
	KeyLAlt   Key = 308
)

// KeyRune returns the Key for a printable ASCII character. Upper case letters
// are folded to lower case. The second return value is false if there is no
// key for the rune.
func KeyRune(r rune) (Key, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r >= ' ' && r <= '~' {
		return Key(r), true
	}
	return 0, false
}

var keyNames = map[Key]string{
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyReturn:    "Return",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyRShift:    "RShift",
	KeyLShift:    "LShift",
	KeyRCtrl:     "RCtrl",
	KeyLCtrl:     "LCtrl",
	KeyRAlt:      "RAlt",
	KeyLAlt:      "LAlt",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if k > ' ' && k <= '~' {
		if k >= 'a' && k <= 'z' {
			return string(rune(k - 'a' + 'A'))
		}
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}
