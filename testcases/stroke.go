// seehuhn.de/go/vectorize - turn images into parametric curve equations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

// strokeCases contain thin lines, as found in line drawings.
var strokeCases = []TestCase{
	{
		Name:       "horizontal",
		Width:      48,
		Height:     24,
		Background: white,
		Shapes:     []Shape{{Inside: segment(6, 12, 42, 12, 3), Color: black}},
	},
	{
		Name:       "diagonal",
		Width:      48,
		Height:     48,
		Background: white,
		Shapes:     []Shape{{Inside: segment(6, 40, 42, 8, 4), Color: black}},
	},
	{
		Name:       "hairline",
		Width:      40,
		Height:     40,
		Background: white,
		Shapes:     []Shape{{Inside: segment(5, 5, 35, 30, 1), Color: black}},
	},
	{
		Name:       "zigzag",
		Width:      64,
		Height:     32,
		Background: white,
		Shapes: []Shape{{
			Inside: union(
				segment(4, 26, 18, 6, 3),
				segment(18, 6, 32, 26, 3),
				segment(32, 26, 46, 6, 3),
				segment(46, 6, 60, 26, 3),
			),
			Color: black,
		}},
	},
}
