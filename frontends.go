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
	"github.com/xrick-go/xrick/gui/ebiten"
	"github.com/xrick-go/xrick/gui/sdl"
	"github.com/xrick-go/xrick/gui/term"
	"github.com/xrick-go/xrick/playmode"
	"github.com/xrick-go/xrick/prefs"
	"github.com/xrick-go/xrick/sysvid"
	"github.com/xrick-go/xrick/version"
)

// the size of the surface required by the video system
const (
	surfaceWidth  = sysvid.Width * sysvid.Zoom
	surfaceHeight = sysvid.Height * sysvid.Zoom
)

// playSDL runs the game in an SDL window. must be called from the main
// goroutine
func playSDL(prf *playmode.Preferences) error {
	win, err := sdl.NewWindow(version.Title(), surfaceWidth, surfaceHeight, prf.Scale.Get().(int))
	if err != nil {
		return err
	}
	defer win.Destroy()

	prf.Scale.SetHookPost(func(v prefs.Value) error {
		return win.SetScale(v.(int))
	})
	defer prf.Scale.SetHookPost(nil)

	lp, err := playmode.NewLoop(prf, win.Surface(), win.Input())
	if err != nil {
		return err
	}
	defer lp.End()

	return lp.Run(win.QuitRequested)
}

// playEbiten runs the game with the Ebitengine frontend. must be called
// from the main goroutine
func playEbiten(prf *playmode.Preferences) error {
	game := ebiten.NewGame(version.Title(), surfaceWidth, surfaceHeight, prf.Scale.Get().(int), prf.FPS.Get().(int))

	prf.FPS.SetHookPost(func(v prefs.Value) error {
		game.SetTPS(v.(int))
		return nil
	})
	defer prf.FPS.SetHookPost(nil)

	lp, err := playmode.NewLoop(prf, game.Surface(), game.Input())
	if err != nil {
		return err
	}
	defer lp.End()

	return game.Run(lp.Tick)
}

// playTerm runs the game in the terminal
func playTerm(prf *playmode.Preferences) error {
	trm, err := term.NewTerminal(nil, surfaceWidth, surfaceHeight, prf.KeyHold.Get().(int))
	if err != nil {
		return err
	}
	defer trm.Destroy()

	prf.KeyHold.SetHookPost(func(v prefs.Value) error {
		trm.SetHold(v.(int))
		return nil
	})
	defer prf.KeyHold.SetHookPost(nil)

	lp, err := playmode.NewLoop(prf, trm.Surface(), trm.Input())
	if err != nil {
		return err
	}
	defer lp.End()

	// the terminal must be restored before the program ends
	lp.Video().SetFatalHandler(func(err error) {
		trm.Destroy()
		sysvid.Panic(err)
	})

	return lp.Run(trm.QuitRequested)
}

