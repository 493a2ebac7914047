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

	"github.com/xrick-go/xrick/host"
)

// translation from host key to ebiten key
var keys = map[host.Key]ebiten.Key{
	host.KeyBackspace: ebiten.KeyBackspace,
	host.KeyTab:       ebiten.KeyTab,
	host.KeyReturn:    ebiten.KeyEnter,
	host.KeyEscape:    ebiten.KeyEscape,
	host.KeySpace:     ebiten.KeySpace,
	host.KeyDelete:    ebiten.KeyDelete,
	host.KeyUp:        ebiten.KeyArrowUp,
	host.KeyDown:      ebiten.KeyArrowDown,
	host.KeyRight:     ebiten.KeyArrowRight,
	host.KeyLeft:      ebiten.KeyArrowLeft,
	host.KeyInsert:    ebiten.KeyInsert,
	host.KeyHome:      ebiten.KeyHome,
	host.KeyEnd:       ebiten.KeyEnd,
	host.KeyPageUp:    ebiten.KeyPageUp,
	host.KeyPageDown:  ebiten.KeyPageDown,
	host.KeyRShift:    ebiten.KeyShiftRight,
	host.KeyLShift:    ebiten.KeyShiftLeft,
	host.KeyRCtrl:     ebiten.KeyControlRight,
	host.KeyLCtrl:     ebiten.KeyControlLeft,
	host.KeyRAlt:      ebiten.KeyAltRight,
	host.KeyLAlt:      ebiten.KeyAltLeft,

	host.KeyF1:      ebiten.KeyF1,
	host.KeyF1 + 1:  ebiten.KeyF2,
	host.KeyF1 + 2:  ebiten.KeyF3,
	host.KeyF1 + 3:  ebiten.KeyF4,
	host.KeyF1 + 4:  ebiten.KeyF5,
	host.KeyF1 + 5:  ebiten.KeyF6,
	host.KeyF1 + 6:  ebiten.KeyF7,
	host.KeyF1 + 7:  ebiten.KeyF8,
	host.KeyF1 + 8:  ebiten.KeyF9,
	host.KeyF1 + 9:  ebiten.KeyF10,
	host.KeyF1 + 10: ebiten.KeyF11,
	host.KeyF12:     ebiten.KeyF12,

	'0': ebiten.Key0,
	'1': ebiten.Key1,
	'2': ebiten.Key2,
	'3': ebiten.Key3,
	'4': ebiten.Key4,
	'5': ebiten.Key5,
	'6': ebiten.Key6,
	'7': ebiten.Key7,
	'8': ebiten.Key8,
	'9': ebiten.Key9,

	'a': ebiten.KeyA,
	'b': ebiten.KeyB,
	'c': ebiten.KeyC,
	'd': ebiten.KeyD,
	'e': ebiten.KeyE,
	'f': ebiten.KeyF,
	'g': ebiten.KeyG,
	'h': ebiten.KeyH,
	'i': ebiten.KeyI,
	'j': ebiten.KeyJ,
	'k': ebiten.KeyK,
	'l': ebiten.KeyL,
	'm': ebiten.KeyM,
	'n': ebiten.KeyN,
	'o': ebiten.KeyO,
	'p': ebiten.KeyP,
	'q': ebiten.KeyQ,
	'r': ebiten.KeyR,
	's': ebiten.KeyS,
	't': ebiten.KeyT,
	'u': ebiten.KeyU,
	'v': ebiten.KeyV,
	'w': ebiten.KeyW,
	'x': ebiten.KeyX,
	'y': ebiten.KeyY,
	'z': ebiten.KeyZ,

	',':  ebiten.KeyComma,
	'.':  ebiten.KeyPeriod,
	'-':  ebiten.KeyMinus,
	'=':  ebiten.KeyEqual,
	'/':  ebiten.KeySlash,
	';':  ebiten.KeySemicolon,
	'\'': ebiten.KeyQuote,
	'[':  ebiten.KeyBracketLeft,
	']':  ebiten.KeyBracketRight,
	'\\': ebiten.KeyBackslash,
	'`':  ebiten.KeyBackquote,
}

// Input implements the host.Input interface.
type Input struct {
	// snapshot of held keys taken by PollInput()
	held [host.MaxKeys]bool
}

// PollInput implements the host.Input interface. Ebitengine updates the key
// state before every call to Update() so this only takes a snapshot.
func (in *Input) PollInput() {
	for k, ek := range keys {
		in.held[k] = ebiten.IsKeyPressed(ek)
	}
}

// KeyState implements the host.Input interface.
func (in *Input) KeyState(port uint, device host.Device, index uint, id host.Key) bool {
	if port != 0 || device != host.DeviceKeyboard || index != 0 {
		return false
	}
	if int(id) >= len(in.held) {
		return false
	}
	return in.held[id]
}
