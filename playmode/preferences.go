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

package playmode

import (
	"strings"

	"github.com/xrick-go/xrick/curated"
	"github.com/xrick-go/xrick/performance/limiter"
	"github.com/xrick-go/xrick/prefs"
	"github.com/xrick-go/xrick/resources"
	"github.com/xrick-go/xrick/sysvid/palette"
)

// Default preference values.
const (
	defaultFPS             = 20
	defaultScale           = 2
	defaultKeyHold         = 4
	defaultScreenshotScale = 2
)

// Preferences for the play mode.
type Preferences struct {
	dsk *prefs.Disk

	// name of the colour table. see palette.Lookup()
	Palette prefs.String

	// frames per second
	FPS prefs.Int

	// window size as a multiple of the frame buffer size
	Scale prefs.Int

	// number of polls a key is held for in the terminal frontend
	KeyHold prefs.Int

	// screenshots are enlarged by this amount
	ScreenshotScale prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() but with a specific
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.FPS.SetRange(1, limiter.MaxFPS)
	p.Scale.SetRange(1, 6)
	p.KeyHold.SetRange(1, 50)
	p.ScreenshotScale.SetRange(1, 8)

	p.Palette.SetHookPre(func(v prefs.Value) error {
		_, err := palette.Lookup(v.(string))
		return err
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefsValue{
		"playmode.palette":         &p.Palette,
		"playmode.fps":             &p.FPS,
		"playmode.scale":           &p.Scale,
		"playmode.keyhold":         &p.KeyHold,
		"playmode.screenshotscale": &p.ScreenshotScale,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// the subset of prefs types used by the Preferences type
type prefsValue interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all preferences to their default value.
func (p *Preferences) SetDefaults() {
	_ = p.Palette.Set(palette.Tables[0].Name)
	_ = p.FPS.Set(defaultFPS)
	_ = p.Scale.Set(defaultScale)
	_ = p.KeyHold.Set(defaultKeyHold)
	_ = p.ScreenshotScale.Set(defaultScreenshotScale)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Table returns the colour table named by the Palette preference.
func (p *Preferences) Table() (palette.Table, error) {
	tbl, err := palette.Lookup(strings.TrimSpace(p.Palette.String()))
	if err != nil {
		return palette.Table{}, curated.Errorf(ErrPlay, err)
	}
	return tbl, nil
}
