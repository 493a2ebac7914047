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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(50)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"sync"
	"time"

	"github.com/xrick-go/xrick/curated"
)

// Sentinel error patterns.
const (
	ErrRate = "limiter: invalid rate (%d)"
)

// MaxFPS is the largest supported rate.
const MaxFPS = 1000

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	crit sync.Mutex

	framesPerSecond int
	ticker          *time.Ticker

	// measurement of the actual rate. updated once per second by Wait()
	measuredCount int
	measuredTime  time.Time
	measured      float64
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if err := checkRate(framesPerSecond); err != nil {
		return nil, err
	}

	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(period(framesPerSecond)),
		measuredTime:    time.Now(),
	}

	return lim, nil
}

func checkRate(framesPerSecond int) error {
	if framesPerSecond <= 0 || framesPerSecond > MaxFPS {
		return curated.Errorf(ErrRate, framesPerSecond)
	}
	return nil
}

func period(framesPerSecond int) time.Duration {
	return time.Second / time.Duration(framesPerSecond)
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if err := checkRate(framesPerSecond); err != nil {
		return err
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.framesPerSecond = framesPerSecond
	lim.ticker.Reset(period(framesPerSecond))

	return nil
}

// Limit returns the current limit.
func (lim *FpsLimiter) Limit() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
	lim.measure()
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		lim.measure()
		return true
	default:
		return false
	}
}

func (lim *FpsLimiter) measure() {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.measuredCount++
	if d := time.Since(lim.measuredTime); d >= time.Second {
		lim.measured = float64(lim.measuredCount) / d.Seconds()
		lim.measuredCount = 0
		lim.measuredTime = time.Now()
	}
}

// Measured returns the actual rate as measured over the most recent second.
// Returns zero if a full second has not yet elapsed.
func (lim *FpsLimiter) Measured() float64 {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.measured
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
