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
	"image/color"
)

// Fixed-point luma weights (0.299, 0.587, 0.114), scaled by 2^14.
const (
	lumaShift = 14
	lumaR     = 4899
	lumaG     = 9617
	lumaB     = 1868
)

func luma(r, g, b uint8) uint8 {
	y := int(r)*lumaR + int(g)*lumaG + int(b)*lumaB + 1<<(lumaShift-1)
	return uint8(y >> lumaShift)
}

// toGray converts img to an 8-bit grayscale image with origin (0, 0).
// Alpha is ignored.
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	res := image.NewGray(image.Rect(0, 0, w, h))

	switch src := img.(type) {
	case *image.Gray:
		for y := range h {
			copy(res.Pix[y*res.Stride:y*res.Stride+w], src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
		}
	case *image.NRGBA:
		for y := range h {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			out := res.Pix[y*res.Stride:]
			for x := range w {
				out[x] = luma(row[4*x], row[4*x+1], row[4*x+2])
			}
		}
	default:
		for y := range h {
			out := res.Pix[y*res.Stride:]
			for x := range w {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				out[x] = luma(c.R, c.G, c.B)
			}
		}
	}
	return res
}

// Median returns the median brightness of g, clamped to the range
// [10, 245].  For an even number of pixels, the mean of the two middle
// values is used.
func Median(g *image.Gray) float64 {
	var hist [256]int
	b := g.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g.Pix[g.PixOffset(b.Min.X, y):]
		for x := range b.Dx() {
			hist[row[x]]++
		}
	}

	n := b.Dx() * b.Dy()
	if n == 0 {
		return minMedian
	}

	// value at position k of the sorted pixel list
	at := func(k int) int {
		seen := 0
		for v, c := range hist {
			seen += c
			if seen > k {
				return v
			}
		}
		return 255
	}

	var m float64
	if n%2 == 1 {
		m = float64(at(n / 2))
	} else {
		m = float64(at(n/2-1)+at(n/2)) / 2
	}
	return clamp(m, minMedian, maxMedian)
}
