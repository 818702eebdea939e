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

package edges

import (
	"image"
	"math"
)

// bilateral smooths g while keeping sharp intensity steps intact.
// Each output pixel is a weighted mean over a disk of the given
// diameter, where the weights fall off with both spatial distance
// and difference in brightness.  Pixels outside the image are
// obtained by mirroring at the border pixels.
func bilateral(g *image.Gray, diameter int, sigmaColor, sigmaSpace float64) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	radius := diameter / 2

	var colorWeight [256]float64
	colorCoeff := -0.5 / (sigmaColor * sigmaColor)
	for i := range colorWeight {
		colorWeight[i] = math.Exp(float64(i*i) * colorCoeff)
	}

	type tap struct {
		dx, dy int
		w      float64
	}
	var taps []tap
	spaceCoeff := -0.5 / (sigmaSpace * sigmaSpace)
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			r2 := float64(i*i + j*j)
			if math.Sqrt(r2) > float64(radius) {
				continue
			}
			taps = append(taps, tap{dx: j, dy: i, w: math.Exp(r2 * spaceCoeff)})
		}
	}

	// mirrored coordinates, offset by radius
	xs := make([]int, w+2*radius)
	for i := range xs {
		xs[i] = reflect101(i-radius, w)
	}
	ys := make([]int, h+2*radius)
	for i := range ys {
		ys[i] = reflect101(i-radius, h)
	}

	pix := func(x, y int) int {
		return int(g.Pix[g.PixOffset(b.Min.X+xs[x+radius], b.Min.Y+ys[y+radius])])
	}

	res := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		out := res.Pix[y*res.Stride:]
		for x := range w {
			v0 := pix(x, y)
			var sum, wsum float64
			for _, t := range taps {
				v := pix(x+t.dx, y+t.dy)
				d := v - v0
				if d < 0 {
					d = -d
				}
				wt := t.w * colorWeight[d]
				sum += float64(v) * wt
				wsum += wt
			}
			out[x] = uint8(math.RoundToEven(sum / wsum))
		}
	}
	return res
}

// reflect101 maps p into the range 0, ..., n-1 by mirroring at the
// first and last element, without repeating them (dcb|abcd|cba).
func reflect101(p, n int) int {
	if n == 1 {
		return 0
	}
	for p < 0 || p >= n {
		if p < 0 {
			p = -p
		} else {
			p = 2*n - 2 - p
		}
	}
	return p
}
