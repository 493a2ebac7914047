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

package userinput_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/xrick-go/xrick/gui/memsurface"
	"github.com/xrick-go/xrick/host"
	"github.com/xrick-go/xrick/test"
	"github.com/xrick-go/xrick/userinput"
)

// script converts a list of booleans into a script of held keys for a single
// key
func script(key host.Key, levels []bool) [][]host.Key {
	s := make([][]host.Key, len(levels))
	for i, down := range levels {
		if down {
			s[i] = []host.Key{key}
		}
	}
	return s
}

func TestEdgeDetection(t *testing.T) {
	inp := memsurface.NewScriptedInput(script(host.KeySpace, []bool{true, true, false, false, true})...)
	det := userinput.NewDetector()

	expected := [][]userinput.Event{
		{{Key: host.KeySpace, Down: true}},
		nil,
		{{Key: host.KeySpace, Down: false}},
		nil,
		{{Key: host.KeySpace, Down: true}},
	}

	for i, exp := range expected {
		evs := det.Poll(inp)
		test.DemandEquality(t, len(evs), len(exp), "poll", i)
		for j := range exp {
			test.ExpectEquality(t, evs[j], exp[j], "poll", i)
		}
	}

	test.ExpectEquality(t, det.State(host.KeySpace), userinput.StateDown)
	test.ExpectEquality(t, det.State(host.KeyEscape), userinput.StateUp)
}

func TestNoMissedTicks(t *testing.T) {
	inp := memsurface.NewScriptedInput(script('p', []bool{true, false})...)
	det := userinput.NewDetector()

	evs := det.Poll(inp)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0], userinput.Event{Key: 'p', Down: true})

	evs = det.Poll(inp)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0], userinput.Event{Key: 'p', Down: false})

	// nothing more happens once the script has been exhausted
	evs = det.Poll(inp)
	test.ExpectEquality(t, len(evs), 0)
}

func TestPollQueries(t *testing.T) {
	inp := memsurface.NewScriptedInput()
	det := userinput.NewDetector()

	det.Poll(inp)
	det.Poll(inp)
	test.ExpectEquality(t, inp.Polls, 2)
	test.ExpectEquality(t, inp.Queries, 2*host.PolledKeys)
}

func TestKeysBeyondPolledRange(t *testing.T) {
	inp := memsurface.NewScriptedInput([]host.Key{host.Key(host.PolledKeys + 10)})
	det := userinput.NewDetector()
	evs := det.Poll(inp)
	test.ExpectEquality(t, len(evs), 0)
	test.ExpectEquality(t, det.State(host.Key(host.MaxKeys+1)), userinput.StateUp)
}

func TestSeveralKeys(t *testing.T) {
	inp := memsurface.NewScriptedInput(
		[]host.Key{host.KeyUp, host.KeyLeft},
		[]host.Key{host.KeyLeft, host.KeySpace},
	)
	det := userinput.NewDetector()

	evs := det.Poll(inp)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0], userinput.Event{Key: host.KeyUp, Down: true})
	test.ExpectEquality(t, evs[1], userinput.Event{Key: host.KeyLeft, Down: true})

	// events are in key order
	evs = det.Poll(inp)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0], userinput.Event{Key: host.KeySpace, Down: true})
	test.ExpectEquality(t, evs[1], userinput.Event{Key: host.KeyUp, Down: false})
}

func TestEdgeProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("events match transitions and alternate press/release", prop.ForAll(
		func(levels []bool) bool {
			inp := memsurface.NewScriptedInput(script(host.KeyLeft, levels)...)
			det := userinput.NewDetector()

			prev := false
			for _, down := range levels {
				evs := det.Poll(inp)
				if down == prev {
					if len(evs) != 0 {
						return false
					}
				} else {
					// exactly one event, a press if the key has gone down
					// and a release if it has come up. because prev is
					// always the state of the last event this also means
					// presses and releases alternate
					if len(evs) != 1 || evs[0].Down != down || evs[0].Key != host.KeyLeft {
						return false
					}
				}
				prev = down
			}
			return true
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
