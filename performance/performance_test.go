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

package performance_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/performance"
	"github.com/xrick-go/xrick/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, Trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectSuccess(t, curated.Is(err, performance.ErrProfileOption))
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(100, 2*time.Second, 50)
	test.ExpectEquality(t, fps, 50.0)
	test.ExpectEquality(t, accuracy, 100.0)

	fps, accuracy = performance.CalcFPS(100, 0, 50)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestCheck(t *testing.T) {
	tw := &test.Writer{}

	var frames int
	frame := func() (bool, error) {
		frames++
		return frames < 10, nil
	}

	err := performance.Check(tw, performance.ProfileNone, frame, 50, time.Minute)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, 10)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "(9 frames in"))
}

func TestCheckTimeout(t *testing.T) {
	tw := &test.Writer{}

	frame := func() (bool, error) {
		time.Sleep(time.Millisecond)
		return true, nil
	}

	err := performance.Check(tw, performance.ProfileNone, frame, 1000, 20*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "fps"))
}

func TestCheckError(t *testing.T) {
	tw := &test.Writer{}

	frame := func() (bool, error) {
		return false, errors.New("frame failed")
	}

	err := performance.Check(tw, performance.ProfileNone, frame, 50, time.Minute)
	test.ExpectSuccess(t, curated.Is(err, performance.ErrCheck))
	test.ExpectEquality(t, tw.String(), "")
}
