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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/prefs"
	"github.com/xrick-go/xrick/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "xrick_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	err = v.Set("---")
	test.ExpectSuccess(t, curated.Is(err, prefs.ErrConvert))
	err = v.Set(1.0)
	test.ExpectSuccess(t, curated.Is(err, prefs.ErrConvert))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestIntRange(t *testing.T) {
	var v prefs.Int
	v.SetRange(1, 60)

	test.ExpectSuccess(t, v.Set(60))
	err := v.Set(61)
	test.ExpectSuccess(t, curated.Is(err, prefs.ErrRange))
	test.ExpectEquality(t, v.String(), "60")

	// reset goes to the bottom of the range
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 1)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var pre, post int

	v.SetHookPre(func(nv prefs.Value) error {
		pre = nv.(int)
		if pre < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, pre, 5)
	test.ExpectEquality(t, post, 5)

	// a failed pre hook prevents the value from being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, pre, -1)
	test.ExpectEquality(t, post, 5)
	test.ExpectEquality(t, v.Get().(int), 5)
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	data := fmt.Sprintf("%s\nfps :: 25\nname :: ST\nbad :: x\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps prefs.Int
	var name prefs.String
	var bad prefs.Int
	var missing prefs.Bool
	test.ExpectSuccess(t, dsk.Add("fps", &fps))
	test.ExpectSuccess(t, dsk.Add("name", &name))
	test.ExpectSuccess(t, dsk.Add("bad", &bad))
	test.ExpectSuccess(t, dsk.Add("missing", &missing))
	test.ExpectSuccess(t, missing.Set(true))

	// a value that can't be converted is not a fatal error
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, fps.Get().(int), 25)
	test.ExpectEquality(t, name.String(), "ST")
	test.ExpectEquality(t, bad.Get().(int), 0)
	test.ExpectEquality(t, missing.Get().(bool), true)
}

func TestLoadCommandLine(t *testing.T) {
	fn := tmpPrefFile(t)

	data := fmt.Sprintf("%s\nfps :: 25\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps prefs.Int
	var scale prefs.Int
	test.ExpectSuccess(t, dsk.Add("fps", &fps))
	test.ExpectSuccess(t, dsk.Add("scale", &scale))

	prefs.PushCommandLineStack("fps::50; scale::3; unused::1")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	test.ExpectEquality(t, fps.Get().(int), 50)
	test.ExpectEquality(t, scale.Get().(int), 3)
}

func TestNotPrefsFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello world\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.ErrNotPrefsFile))
	err = dsk.Save()
	test.ExpectSuccess(t, curated.Is(err, prefs.ErrNotPrefsFile))
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("test", &v), prefs.ErrDuplicateKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("bad key", &v), prefs.ErrInvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("bad::key", &v), prefs.ErrInvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &v), prefs.ErrInvalidKey))
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestDefunct(t *testing.T) {
	fn := tmpPrefFile(t)

	data := fmt.Sprintf("%s\nsysvid.zoom :: 2\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("playmode.fps", &v))
	test.ExpectSuccess(t, v.Set(30))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "playmode.fps :: 30\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}
