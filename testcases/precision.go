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

// precisionCases contain features of only a few pixels.
var precisionCases = []TestCase{
	{
		Name:       "single_pixel",
		Width:      4,
		Height:     4,
		Background: white,
		Shapes:     []Shape{{Inside: pixel(2, 2), Color: black}},
	},
	{
		Name:       "pixel_near_border",
		Width:      8,
		Height:     8,
		Background: white,
		Shapes:     []Shape{{Inside: pixel(1, 1), Color: black}},
	},
	{
		Name:       "two_pixels",
		Width:      12,
		Height:     12,
		Background: white,
		Shapes: []Shape{
			{Inside: pixel(3, 3), Color: black},
			{Inside: pixel(8, 7), Color: black},
		},
	},
	{
		Name:       "small_square",
		Width:      12,
		Height:     12,
		Background: black,
		Shapes:     []Shape{{Inside: box(4, 4, 7, 7), Color: white}},
	},
}
