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

package prefs

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in the preferences file.
const KeySep = " :: "

// Sentinel error patterns.
const (
	ErrDuplicateKey = "prefs: key (%s) already added"
	ErrInvalidKey   = "prefs: key (%s) is invalid"
	ErrNotPrefsFile = "prefs: %s is not a preferences file"
	ErrDisk         = "prefs: %v"
	ErrValue        = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk. A preferences file can
// be shared between more than one Disk instance. Values that are not known to
// the Disk instance are preserved when the file is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk. The key
// must be unique within the Disk instance and must not contain white space or
// the key separator.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, "::") {
		return curated.Errorf(ErrInvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(ErrDuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values known to the Disk instance.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(ErrValue, k, err)
		}
	}
	return nil
}

// read the preferences file into a map of raw values. a missing file is not an
// error, the map is simply empty.
func (dsk *Disk) read() (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return vals, nil
		}
		return nil, curated.Errorf(ErrDisk, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boiler plate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		if err := scanner.Err(); err != nil {
			return nil, curated.Errorf(ErrDisk, err)
		}
		return nil, curated.Errorf(ErrNotPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), KeySep)
		if !ok {
			continue
		}
		vals[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ErrDisk, err)
	}

	return vals, nil
}

// Save current preference values to disk. Values in the file that are not
// known to this Disk instance are kept, unless they are defunct.
func (dsk *Disk) Save() error {
	vals, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range slices.Sorted(maps.Keys(vals)) {
		if isDefunct(k) {
			continue
		}
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, vals[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf(ErrDisk, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// precedence over values in the file.
//
// A value that cannot be set (the conversion fails or a hook returns an
// error) is logged and the preference is left unchanged. Loading continues
// with the next value.
func (dsk *Disk) Load() error {
	vals, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		v, onDisk := vals[k]
		onCommandLine, cv := GetCommandLinePref(k)
		if onCommandLine {
			v = fmt.Sprintf("%v", cv)
		} else if !onDisk {
			continue
		}

		if err := p.Set(v); err != nil {
			logger.Logf(logger.Allow, "prefs", "%v", curated.Errorf(ErrValue, k, err))
		}
	}

	return nil
}
