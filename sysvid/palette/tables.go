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

package palette

import (
	"strings"

	"github.com/xrick-go/xrick/curated"
)

// Sentinal error patterns.
const (
	ErrUnknownTable = "palette: unknown colour table (%s)"
)

// Table is one of the built-in game colour tables.
type Table struct {
	Name    string
	entries []Entry
}

// Entries returns a copy of the colours in the table.
func (t Table) Entries() []Entry {
	e := make([]Entry, len(t.entries))
	copy(e, t.entries)
	return e
}

// Len returns the number of colours in the table.
func (t Table) Len() int {
	return len(t.entries)
}

func makeTable(name string, red, green, blue []uint8) Table {
	t := Table{Name: name, entries: make([]Entry, len(red))}
	for i := range red {
		t.entries[i] = Entry{R: red[i], G: green[i], B: blue[i]}
	}
	return t
}

// PC is the colour table used with the PC graphics set.
var PC = makeTable("PC",
	[]uint8{0x00, 0x50, 0xf0, 0xf0, 0x00, 0x50, 0xf0, 0xf0},
	[]uint8{0x00, 0xf8, 0x50, 0xf8, 0x00, 0xf8, 0x50, 0xf8},
	[]uint8{0x00, 0x50, 0x50, 0x50, 0x00, 0xf8, 0xf8, 0xf8},
)

// ST is the colour table used with the Atari ST graphics set. The second
// half of the table are the colours used when a cheat mode is active.
var ST = makeTable("ST",
	[]uint8{
		0x00, 0xd8, 0xb0, 0xf8, 0x20, 0x00, 0x00, 0x20,
		0x48, 0x48, 0x90, 0xd8, 0x48, 0x68, 0x90, 0xb0,
		0x50, 0xe0, 0xc8, 0xf8, 0x68, 0x50, 0x50, 0x68,
		0x80, 0x80, 0xb0, 0xe0, 0x80, 0x98, 0xb0, 0xc8,
	},
	[]uint8{
		0x00, 0x00, 0x6c, 0x90, 0x24, 0x48, 0x6c, 0x48,
		0x6c, 0x24, 0x48, 0x6c, 0x48, 0x6c, 0x90, 0xb4,
		0x54, 0x54, 0x9c, 0xb4, 0x6c, 0x84, 0x9c, 0x84,
		0x9c, 0x6c, 0x84, 0x9c, 0x84, 0x9c, 0xb4, 0xcc,
	},
	[]uint8{
		0x00, 0x00, 0x68, 0x68, 0x20, 0xb0, 0xd8, 0x00,
		0x20, 0x00, 0x00, 0x00, 0x48, 0x68, 0x90, 0xb0,
		0x50, 0x50, 0x98, 0x98, 0x68, 0xc8, 0xe0, 0x50,
		0x68, 0x50, 0x50, 0x50, 0x80, 0x98, 0xb0, 0xc8,
	},
)

// Tables lists the available colour tables. The first entry is the default.
var Tables = []Table{ST, PC}

// Lookup returns the colour table with the name. Case insensitive.
func Lookup(name string) (Table, error) {
	for _, t := range Tables {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Table{}, curated.Errorf(ErrUnknownTable, name)
}
