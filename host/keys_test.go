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

package host_test

import (
	"testing"

	"github.com/xrick-go/xrick/host"
	"github.com/xrick-go/xrick/test"
)

func TestKeyRune(t *testing.T) {
	k, ok := host.KeyRune('P')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, host.Key('p'))

	k, ok = host.KeyRune(' ')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, host.KeySpace)

	_, ok = host.KeyRune('é')
	test.ExpectFailure(t, ok)
}

func TestKeyString(t *testing.T) {
	test.ExpectEquality(t, host.KeyUp.String(), "Up")
	test.ExpectEquality(t, host.KeyF12.String(), "F12")
	test.ExpectEquality(t, host.Key('e').String(), "E")
	test.ExpectEquality(t, host.Key('1').String(), "1")
	test.ExpectEquality(t, host.Key(400).String(), "Key(400)")
}

func TestKeysInPolledRange(t *testing.T) {
	for _, k := range []host.Key{host.KeyUp, host.KeyDown, host.KeyLeft, host.KeyRight, host.KeyEscape, host.KeySpace, host.KeyF12, host.KeyLAlt} {
		test.ExpectSuccess(t, int(k) < host.PolledKeys, k)
	}
	test.ExpectSuccess(t, host.PolledKeys <= host.MaxKeys)
}
