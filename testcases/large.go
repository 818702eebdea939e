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

// largeCases are bigger images with many curves.
var largeCases = []TestCase{
	{
		Name:       "blobs",
		Width:      300,
		Height:     200,
		Background: white,
		Shapes: []Shape{{
			Inside: func(x, y float64) bool {
				return math.Sin(x/13)*math.Cos(y/9) > 0.35
			},
			Color: black,
		}},
	},
	{
		Name:       "concentric",
		Width:      256,
		Height:     256,
		Background: white,
		Shapes: []Shape{{
			Inside: func(x, y float64) bool {
				d := math.Hypot(x-128, y-128)
				return d < 120 && int(d/10)%2 == 0
			},
			Color: black,
		}},
	},
}
