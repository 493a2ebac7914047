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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/xrick-go/xrick/curated"
)

// sentinel error returned by the frame loop when the duration has elapsed.
var timedOut = errors.New("performance timed out")

// Sentinel error patterns.
const (
	ErrCheck = "performance: %v"
)

// Check the performance of the supplied frame function. The function is
// called repeatedly until the duration has elapsed, optionally creating
// profiles as defined by the Profile argument. The measured rate is written
// to output and compared to the target rate.
//
// If the frame function returns an error, the check stops and the error is
// returned. A frame function returning false stops the check early, which is
// not an error.
func Check(output io.Writer, profile Profile, frame func() (bool, error), target int, duration time.Duration) error {
	var numFrames int
	var start time.Time

	runner := func() error {
		start = time.Now()
		deadline := start.Add(duration)

		for {
			ok, err := frame()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			numFrames++

			if !time.Now().Before(deadline) {
				return timedOut
			}
		}
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(ErrCheck, err)
	}

	dur := time.Since(start)
	fps, accuracy := CalcFPS(numFrames, dur, target)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
