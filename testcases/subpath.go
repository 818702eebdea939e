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

// subpathCases lead to several nested curves.
var subpathCases = []TestCase{
	{
		Name:       "ring",
		Width:      64,
		Height:     64,
		Background: white,
		Shapes:     []Shape{{Inside: ring(32, 32, 12, 25), Color: black}},
	},
	{
		Name:       "square_with_hole",
		Width:      64,
		Height:     64,
		Background: white,
		Shapes: []Shape{
			{Inside: box(10, 10, 54, 54), Color: black},
			{Inside: box(24, 24, 40, 40), Color: white},
		},
	},
	{
		Name:       "target",
		Width:      80,
		Height:     80,
		Background: white,
		Shapes: []Shape{
			{Inside: disk(40, 40, 35), Color: black},
			{Inside: disk(40, 40, 25), Color: white},
			{Inside: disk(40, 40, 15), Color: black},
			{Inside: disk(40, 40, 5), Color: white},
		},
	},
}
