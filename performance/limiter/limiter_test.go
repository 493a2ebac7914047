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

package limiter_test

import (
	"testing"
	"time"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/performance/limiter"
	"github.com/xrick-go/xrick/test"
)

func TestInvalidRate(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectSuccess(t, curated.Is(err, limiter.ErrRate))

	_, err = limiter.NewFPSLimiter(limiter.MaxFPS + 1)
	test.ExpectSuccess(t, curated.Is(err, limiter.ErrRate))

	lim, err := limiter.NewFPSLimiter(50)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	err = lim.SetLimit(-1)
	test.ExpectSuccess(t, curated.Is(err, limiter.ErrRate))
	test.ExpectEquality(t, lim.Limit(), 50)
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(200)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	start := time.Now()
	for range 10 {
		lim.Wait()
	}

	// ten ticks at 200fps takes at least 50ms
	test.ExpectSuccess(t, time.Since(start) >= 45*time.Millisecond)
}

func TestHasWaited(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(1)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// the first tick is a whole second away
	test.ExpectFailure(t, lim.HasWaited())

	test.DemandSuccess(t, lim.SetLimit(500))
	test.ExpectEquality(t, lim.Limit(), 500)
	time.Sleep(10 * time.Millisecond)
	test.ExpectSuccess(t, lim.HasWaited())
	test.ExpectEquality(t, lim.Measured(), 0.0)
}
