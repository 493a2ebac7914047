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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xrick-go/xrick/logger"
	"github.com/xrick-go/xrick/modalflag"
	"github.com/xrick-go/xrick/performance"
	"github.com/xrick-go/xrick/playmode"
	"github.com/xrick-go/xrick/prefs"
	"github.com/xrick-go/xrick/statsview"
	"github.com/xrick-go/xrick/version"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

// the frontends all require the main thread so launch() is not run in a
// separate goroutine
func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the command line and runs the selected mode. returns the exit
// value of the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "EBITEN", "TERM", "HEADLESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, output, true, playSDL)

	case "EBITEN":
		err = play(md, output, true, playEbiten)

	case "TERM":
		// echoing the log would corrupt the terminal display
		err = play(md, output, false, playTerm)

	case "HEADLESS":
		err = headless(md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

// flags common to all modes
type common struct {
	log       *bool
	prefs     *string
	statsview *bool
}

func addCommon(md *modalflag.Modes, echo bool) common {
	c := common{}
	if echo {
		c.log = md.AddBool("log", false, "echo debugging log to stdout")
	}
	c.prefs = md.AddString("prefs", "", "preferences for this run only: \"key::value; ...\"")
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// apply the common flags. the returned function must be called when the mode
// has finished.
func (c common) apply(output io.Writer) func() {
	if c.log != nil && *c.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch(output)
	}

	return func() {
		if c.statsview != nil && *c.statsview {
			statsview.Stop()
		}
		if *c.prefs != "" {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}
	}
}

func play(md *modalflag.Modes, output io.Writer, echo bool, frontend func(*playmode.Preferences) error) error {
	md.NewMode()

	cm := addCommon(md, echo)
	save := md.AddBool("save", true, "save preferences on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	done := cm.apply(output)
	defer done()

	prf, err := playmode.NewPreferences()
	if err != nil {
		return err
	}

	err = frontend(prf)
	if err != nil {
		return err
	}

	if *save {
		return prf.Save()
	}

	return nil
}

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cm := addCommon(md, true)
	frames := md.AddInt("frames", 1000, "maximum number of frames to run")
	dump := md.AddString("memviz", "", "write a graph of the final state to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	done := cm.apply(output)
	defer done()

	prf, err := playmode.NewPreferences()
	if err != nil {
		return err
	}

	if *dump == "" {
		return playmode.Headless(output, nil, prf, *frames)
	}

	f, err := os.Create(*dump)
	if err != nil {
		return err
	}
	defer f.Close()

	return playmode.Headless(output, f, prf, *frames)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cm := addCommon(md, true)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	done := cm.apply(output)
	defer done()

	prf, err := playmode.NewPreferences()
	if err != nil {
		return err
	}

	return playmode.Performance(output, prf, prof, dur)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	rev := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *rev {
		fmt.Fprintln(output, r)
	}

	return nil
}
