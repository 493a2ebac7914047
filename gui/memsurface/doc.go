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

// Package memsurface provides in-memory implementations of the destination
// surface and of the host input. Nothing is shown to the user.
//
// The Surface type records which rectangles are marked dirty and presented and
// can be arranged to fail a call to Lock(). The ScriptedInput type replays a
// fixed sequence of held keys.
package memsurface
