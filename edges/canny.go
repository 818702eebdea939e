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

	"seehuhn.de/go/vectorize/bitmap"
)

// tan(22.5°) in 17.15 fixed point
const (
	cannyShift = 15
	tg22       = 13573
)

// pixel states during non-maximum suppression and hysteresis
const (
	stateCandidate uint8 = iota
	stateNone
	stateEdge
)

// canny runs the Canny edge detector on g, using 3x3 Sobel gradients and
// the L2 gradient norm.  Pixels with gradient magnitude above upper start
// an edge, edges are continued through pixels with magnitude above lower.
//
// Row 0 of the result is the top row of g.
func canny(g *image.Gray, lower, upper int) *bitmap.Bitmap {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if lower > upper {
		lower, upper = upper, lower
	}
	lowSq := lower * lower
	highSq := upper * upper

	at := func(x, y int) int {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return int(g.Pix[g.PixOffset(b.Min.X+x, b.Min.Y+y)])
	}

	dx := make([]int, w*h)
	dy := make([]int, w*h)
	mag := make([]int, w*h)
	for y := range h {
		for x := range w {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			i := y*w + x
			dx[i] = gx
			dy[i] = gy
			mag[i] = gx*gx + gy*gy
		}
	}

	magAt := func(x, y int) int {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0
		}
		return mag[y*w+x]
	}

	state := make([]uint8, w*h)
	var stack []int
	for y := range h {
		for x := range w {
			i := y*w + x
			m := mag[i]
			if m <= lowSq || !isLocalMax(m, dx[i], dy[i], x, y, magAt) {
				state[i] = stateNone
				continue
			}
			if m > highSq {
				state[i] = stateEdge
				stack = append(stack, i)
			}
		}
	}

	// hysteresis
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for ny := max(y-1, 0); ny <= min(y+1, h-1); ny++ {
			for nx := max(x-1, 0); nx <= min(x+1, w-1); nx++ {
				j := ny*w + nx
				if state[j] == stateCandidate {
					state[j] = stateEdge
					stack = append(stack, j)
				}
			}
		}
	}

	bm := bitmap.New(w, h)
	for i, s := range state {
		if s == stateEdge {
			bm.Pix[i] = 1
		}
	}
	return bm
}

// isLocalMax checks whether the gradient magnitude m at (x, y) is maximal
// along the gradient direction, quantized to one of four directions.
// Ties are broken towards the right and bottom neighbor.
func isLocalMax(m, gx, gy, x, y int, magAt func(x, y int) int) bool {
	ax := gx
	if ax < 0 {
		ax = -ax
	}
	ay := gy
	if ay < 0 {
		ay = -ay
	}
	ay <<= cannyShift

	tg22x := ax * tg22
	if ay < tg22x { // horizontal gradient
		return m > magAt(x-1, y) && m >= magAt(x+1, y)
	}
	tg67x := tg22x + ax<<(cannyShift+1)
	if ay > tg67x { // vertical gradient
		return m > magAt(x, y-1) && m >= magAt(x, y+1)
	}
	s := 1
	if gx^gy < 0 {
		s = -1
	}
	return m > magAt(x-s, y-1) && m > magAt(x+s, y+1)
}
