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
	"testing"
	"time"

	"github.com/xrick-go/xrick/test"
)

func TestPortableJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(portablePath, 0o700))

	p, err := JoinPath("screenshots", "shot.png")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(portablePath, "screenshots", "shot.png"))

	// intermediate directories have been created but not the file
	info, err := os.Stat(filepath.Join(portablePath, "screenshots"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
	_, err = os.Stat(p)
	test.ExpectSuccess(t, os.IsNotExist(err))

	// base path is not added twice
	q, err := JoinPath(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}

func TestConfigJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())
	cnf := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cnf)
	t.Setenv("HOME", cnf)

	b, err := BasePath()
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, b, portablePath)

	p, err := JoinPath("preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(b, "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("screenshot", "", n), "screenshot_20240309_140507")
	test.ExpectEquality(t, uniqueFilename("screenshot", " ST ", n), "screenshot_ST_20240309_140507")
}
