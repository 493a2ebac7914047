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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/xrick-go/xrick/logger"
)

const url = "/debug/statsview"

// the running view manager. nil if Launch() has not been called
var mgr *statsview.ViewManager

// Launch a new goroutine running the statsview. Calling Launch() more than
// once has no effect.
func Launch(output io.Writer) {
	if mgr != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(Address), viewer.WithTheme(viewer.ThemeWesteros))
	mgr = statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "launched at %s%s", Address, url)
	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Stop the statsview server if it is running.
func Stop() {
	if mgr == nil {
		return
	}
	mgr.Stop()
	mgr = nil
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
