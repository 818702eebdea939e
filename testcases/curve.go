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

import "math"

// curveCases have smooth outlines.
var curveCases = []TestCase{
	{
		Name:       "disk",
		Width:      64,
		Height:     64,
		Background: white,
		Shapes:     []Shape{{Inside: disk(32, 32, 20), Color: black}},
	},
	{
		Name:       "disk_inverted",
		Width:      64,
		Height:     64,
		Background: black,
		Shapes:     []Shape{{Inside: disk(32, 32, 20), Color: white}},
	},
	{
		Name:       "ellipse",
		Width:      80,
		Height:     50,
		Background: white,
		Shapes: []Shape{{
			Inside: func(x, y float64) bool {
				dx, dy := (x-40)/30, (y-25)/15
				return dx*dx+dy*dy <= 1
			},
			Color: blue,
		}},
	},
	{
		Name:       "wave",
		Width:      96,
		Height:     48,
		Background: white,
		Shapes: []Shape{{
			Inside: func(x, y float64) bool {
				return y > 24+10*math.Sin(x/8)
			},
			Color: red,
		}},
	},
}
