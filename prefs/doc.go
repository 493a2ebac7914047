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

// Package prefs facilitates the storage of preferential values in the
// application. It is not a good solution for storing other types of data.
//
// Preference values are declared with one of the types in this package (Bool,
// Int or String) and added to a Disk instance with a key. The Disk instance
// saves and loads the values to and from a preferences file. Each line of the
// file is a key/value pair:
//
//	playmode.fps :: 30
//
// The first line of the file is always the WarningBoilerPlate string. More
// than one Disk instance can share the same file. Saving will not remove
// entries added by another Disk instance.
//
// Values can also be set from the command line. See PushCommandLineStack().
// Values on the command line stack override values on disk when Load() is
// called.
package prefs
