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

import "image"

// ctmCases use images whose bounds do not start at the origin, or which
// have an unusual aspect ratio.
var ctmCases = []TestCase{
	{
		Name:       "offset_origin",
		Width:      40,
		Height:     30,
		Origin:     image.Pt(17, -5),
		Background: white,
		Shapes:     []Shape{{Inside: disk(20, 15, 9), Color: black}},
	},
	{
		Name:       "tall",
		Width:      12,
		Height:     90,
		Background: white,
		Shapes:     []Shape{{Inside: box(3, 10, 9, 80), Color: blue}},
	},
	{
		Name:       "wide",
		Width:      120,
		Height:     9,
		Background: black,
		Shapes:     []Shape{{Inside: box(10, 2, 110, 7), Color: white}},
	},
}
