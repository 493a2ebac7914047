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

// Package version reports the version of the program. The release number is
// set at link time:
//
//	go build -ldflags "-X github.com/xrick-go/xrick/version.number=v0.1.0"
//
// Without a release number the version is taken from the build information
// of the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the program as it appears in window titles
// and in log output.
const ApplicationName = "xrick"

// set by the linker
var number string

// the revision and version strings are decided once on startup
var (
	revision string
	version  string
)

// Version returns the version string and the revision string. The boolean
// value is true if the version is a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name and the version, suitable for a window
// title.
func Title() string {
	return fmt.Sprintf("%s %s", ApplicationName, version)
}

func init() {
	revision, version = fromBuildInfo()
	if number != "" {
		version = number
	}
}

// fromBuildInfo decides the revision and version strings from the VCS
// settings recorded in the binary.
func fromBuildInfo() (string, string) {
	var vcs bool
	var rev string
	var dirty bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = v.Value
			case "vcs.modified":
				dirty = v.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if dirty {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	if vcs {
		return rev, "unreleased"
	}
	return rev, "local"
}
