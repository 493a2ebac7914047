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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "TERM", "HEADLESS")
//	_, _ = md.Parse()
//
// After parsing, Mode() returns the selected mode. The first mode in the list
// is the default and is selected if the first argument isn't one of the
// listed modes. Flags for the selected mode are added after a call to
// NewMode() and parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		fps := md.AddInt("fps", 50, "frames per second")
//		_, _ = md.Parse()
//	}
//
// Non-flag arguments that remain after parsing can be retrieved with the
// RemainingArgs() or GetArg() functions.
//
// Help is handled automatically. The -help flag prints the flags and sub-modes
// for the current mode to the Output writer and Parse() returns ParseHelp.
package modalflag
