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

// dashCases contain rows of many small, similar features.
var dashCases = []TestCase{
	{
		Name:       "dashed_line",
		Width:      80,
		Height:     20,
		Background: white,
		Shapes: []Shape{{
			Inside: func(x, y float64) bool {
				return y >= 8 && y < 12 && int(x)%10 < 6
			},
			Color: black,
		}},
	},
	{
		Name:       "dotted_grid",
		Width:      60,
		Height:     60,
		Background: white,
		Shapes: []Shape{{
			Inside: func(x, y float64) bool {
				dx := x - 10*float64(int(x/10)) - 5
				dy := y - 10*float64(int(y/10)) - 5
				return dx*dx+dy*dy <= 6
			},
			Color: black,
		}},
	},
	{
		Name:       "checkerboard",
		Width:      48,
		Height:     48,
		Background: white,
		Shapes: []Shape{{
			Inside: func(x, y float64) bool {
				return (int(x)/8+int(y)/8)%2 == 0
			},
			Color: black,
		}},
	},
}
