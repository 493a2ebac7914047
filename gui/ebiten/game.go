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

package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/logger"
)

// Sentinel error patterns.
const (
	ErrEbiten = "ebiten: %v"
)

// Game implements the ebiten.Game interface.
type Game struct {
	surface *Surface
	input   *Input

	// called once per Update(). returning false ends the game
	tick func() bool
}

// NewGame is the preferred method of initialisation for the Game type. The
// window size is the frame buffer size multiplied by scale.
func NewGame(title string, width, height int, scale int, tps int) *Game {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetTPS(tps)

	return &Game{
		surface: NewSurface(width, height),
		input:   &Input{},
	}
}

// Surface returns the compositor.Surface implementation.
func (g *Game) Surface() *Surface {
	return g.surface
}

// Input returns the host.Input implementation.
func (g *Game) Input() *Input {
	return g.input
}

// SetTPS changes the number of ticks per second.
func (g *Game) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// Run the game. The tick function is called once per Update(). Run() does not
// return until the tick function returns false or the window is closed.
func (g *Game) Run(tick func() bool) error {
	g.tick = tick

	logger.Log(logger.Allow, "ebiten", "running")
	err := ebiten.RunGame(g)
	if err != nil {
		return curated.Errorf(ErrEbiten, err)
	}

	return nil
}

// Update implements the ebiten.Game interface.
func (g *Game) Update() error {
	if !g.tick() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements the ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.upload()
	screen.DrawImage(g.surface.img, &ebiten.DrawImageOptions{})
}

// Layout implements the ebiten.Game interface. The logical screen is always
// the size of the surface. Ebitengine scales it to fit the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.surface.Width(), g.surface.Height()
}
