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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and a list of values in the same
// way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Sentinal patterns should be
// stored as a const string, suitably named and commented, in the package
// that raises them. For example, the compositor package declares:
//
//	const ErrSurfaceLock = "compositor: cannot lock surface: %v"
//
// and callers can test for it with:
//
//	if curated.Is(err, compositor.ErrSurfaceLock) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain, which is to say anywhere in the list of values given to
// Errorf() that are themselves curated errors.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of the difference between curated and uncurated errors as
// being 'expected' and 'unexpected' errors.
//
// Error() normalises the message such that adjacent duplicate parts of the
// chain are removed. Parts are separated by the sub-string ': '. This means
// that wrapping an error with the same prefix at each level of a call stack
// does not result in a stuttering message:
//
//	video: video: cannot lock surface
//
// becomes
//
//	video: cannot lock surface
package curated
