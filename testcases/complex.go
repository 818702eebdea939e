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

import (
	"image/color"
	"math"
)

// complexCases combine several kinds of features in one image.
var complexCases = []TestCase{
	{
		Name:       "star",
		Width:      64,
		Height:     64,
		Background: white,
		Shapes:     []Shape{{Inside: star(32, 32, 28, 11, 5), Color: black}},
	},
	{
		Name:       "scene",
		Width:      100,
		Height:     80,
		Background: white,
		Shapes: []Shape{
			{Inside: box(0, 60, 100, 80), Color: gray},
			{Inside: box(15, 30, 45, 60), Color: red},
			{Inside: polygon([2]float64{10, 30}, [2]float64{30, 12}, [2]float64{50, 30}), Color: black},
			{Inside: disk(78, 18, 10), Color: blue},
			{Inside: segment(60, 60, 90, 40, 3), Color: black},
		},
	},
	{
		Name:       "low_contrast",
		Width:      50,
		Height:     50,
		Background: gray,
		Shapes: []Shape{
			{Inside: disk(25, 25, 15), Color: color.NRGBA{R: 140, G: 140, B: 140, A: 255}},
			{Inside: box(5, 5, 20, 20), Color: black},
		},
	},
}

// star returns a star with n points, with outer radius r0 and inner
// radius r1, one point facing upwards.
func star(cx, cy, r0, r1 float64, n int) func(x, y float64) bool {
	pts := make([][2]float64, 2*n)
	for i := range pts {
		r := r0
		if i%2 == 1 {
			r = r1
		}
		phi := math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{cx + r*math.Sin(phi), cy - r*math.Cos(phi)}
	}
	return polygon(pts...)
}
