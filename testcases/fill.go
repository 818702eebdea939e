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

import "image/color"

// fillCases are images of a single color, without any edges.
var fillCases = []TestCase{
	{
		Name:       "white",
		Width:      10,
		Height:     10,
		Background: white,
		Empty:      true,
	},
	{
		Name:       "black",
		Width:      10,
		Height:     10,
		Background: black,
		Empty:      true,
	},
	{
		Name:       "gray",
		Width:      10,
		Height:     10,
		Background: gray,
		Empty:      true,
	},
	{
		// alpha is ignored
		Name:       "transparent",
		Width:      16,
		Height:     9,
		Background: color.NRGBA{R: 40, G: 200, B: 90},
		Empty:      true,
	},
	{
		Name:       "single_row",
		Width:      25,
		Height:     1,
		Background: red,
		Empty:      true,
	},
}
