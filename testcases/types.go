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

// Package testcases provides synthetic input images for the
// vectorization pipeline.
package testcases

import (
	"image"
	"image/color"
	"math"
)

// TestCase defines a single input image.
type TestCase struct {
	Name       string      // lowercase a-z, 0-9 and _ only
	Width      int         // image width in pixels
	Height     int         // image height in pixels
	Origin     image.Point // minimum point of the image bounds
	Background color.NRGBA
	Shapes     []Shape // painted in order, later shapes on top

	// Empty indicates that the image has no visible edges, so that
	// the pipeline must return no equations.
	Empty bool
}

// Shape is a region of the image painted in a single color.
type Shape struct {
	// Inside reports whether the pixel with center (x, y) belongs to the
	// shape.  Coordinates are relative to the image origin, with the
	// y-axis pointing down.
	Inside func(x, y float64) bool
	Color  color.NRGBA
}

// Image paints the test case.
func (tc TestCase) Image() *image.NRGBA {
	r := image.Rectangle{Min: tc.Origin, Max: tc.Origin.Add(image.Pt(tc.Width, tc.Height))}
	img := image.NewNRGBA(r)
	for y := range tc.Height {
		for x := range tc.Width {
			c := tc.Background
			for _, s := range tc.Shapes {
				if s.Inside(float64(x)+0.5, float64(y)+0.5) {
					c = s.Color
				}
			}
			img.SetNRGBA(tc.Origin.X+x, tc.Origin.Y+y, c)
		}
	}
	return img
}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 220, G: 30, B: 30, A: 255}
	blue  = color.NRGBA{R: 20, G: 40, B: 200, A: 255}
	gray  = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

func disk(cx, cy, r float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		return math.Hypot(x-cx, y-cy) <= r
	}
}

func ring(cx, cy, r0, r1 float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		d := math.Hypot(x-cx, y-cy)
		return d >= r0 && d <= r1
	}
}

func box(x0, y0, x1, y1 float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		return x >= x0 && x < x1 && y >= y0 && y < y1
	}
}

func pixel(px, py int) func(x, y float64) bool {
	return box(float64(px), float64(py), float64(px+1), float64(py+1))
}

// polygon uses the even-odd rule.
func polygon(pts ...[2]float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		in := false
		j := len(pts) - 1
		for i := range pts {
			xi, yi := pts[i][0], pts[i][1]
			xj, yj := pts[j][0], pts[j][1]
			if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
				in = !in
			}
			j = i
		}
		return in
	}
}

// segment returns the points with distance at most w/2 from the line
// segment between (x0, y0) and (x1, y1).
func segment(x0, y0, x1, y1, w float64) func(x, y float64) bool {
	dx, dy := x1-x0, y1-y0
	l2 := dx*dx + dy*dy
	return func(x, y float64) bool {
		t := 0.0
		if l2 > 0 {
			t = max(0, min(1, ((x-x0)*dx+(y-y0)*dy)/l2))
		}
		return math.Hypot(x-x0-t*dx, y-y0-t*dy) <= w/2
	}
}

func union(fs ...func(x, y float64) bool) func(x, y float64) bool {
	return func(x, y float64) bool {
		for _, f := range fs {
			if f(x, y) {
				return true
			}
		}
		return false
	}
}
