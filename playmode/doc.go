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

// Package playmode runs the game loop with one of the available frontends.
//
// The loop for every frame is:
//
//	poll input -> run game logic -> update the video
//
// The game logic is a small demonstration scene. A block is steered around
// the screen with the cursor keys. Fire changes the colour of the block,
// pause freezes the scene, end returns the block to the centre of the screen
// and exit stops the loop. F12 saves a screenshot.
//
// The frame rate, the colour table and other options are stored as
// preferences. See the Preferences type.
package playmode
