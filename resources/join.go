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

package resources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xrick-go/xrick/curated"
)

// the name of the portable resource directory. if this directory exists in
// the current working directory then it is used as the base path
const portablePath = ".xrick"

// the name of the resource directory in the user's configuration directory
const configPath = "xrick"

// Sentinel error patterns.
const (
	ErrNoBasePath = "resources: %v"
	ErrMkdir      = "resources: %v"
)

// checkPortable returns true if the portable resource directory exists.
func checkPortable() bool {
	info, err := os.Stat(portablePath)
	return err == nil && info.IsDir()
}

// BasePath returns the directory all resources are stored in. It is either
// the portable directory or a directory in the user's configuration
// directory. The directory is not created.
func BasePath() (string, error) {
	if checkPortable() {
		return portablePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", curated.Errorf(ErrNoBasePath, err)
	}

	return filepath.Join(cnf, configPath), nil
}

// JoinPath prepends the supplied path with the base path, if required.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	b, err := BasePath()
	if err != nil {
		return "", err
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", curated.Errorf(ErrMkdir, err)
	}

	return p, nil
}
