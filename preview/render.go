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

// Package preview draws traced paths, for checking the result of a
// vectorization without a graphing calculator.
//
// Images are produced by an anti-aliasing scanline rasterizer, PDF files
// by seehuhn.de/go/pdf.
package preview

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/vectorize/potrace"
)

// Render draws the curves of p in black on a white background.
//
// Coordinates in p have the y-axis pointing up, with the origin in the
// bottom-left corner of the image.  If lineWidth is positive, the curves
// are stroked with this width.  Otherwise the regions enclosed by the
// curves are filled using the even-odd rule.
func Render(p *potrace.Path, width, height int, lineWidth float64) *image.Gray {
	if width <= 0 || height <= 0 {
		return image.NewGray(image.Rectangle{})
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	if p == nil || len(p.Curves) == 0 {
		return img
	}

	r := NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
	r.CTM = matrix.Matrix{1, 0, 0, -1, 0, float64(height)}
	emit := func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = 0xff - uint8(c*255+0.5)
		}
	}

	data := p.ToPath()
	if lineWidth > 0 {
		r.Width = lineWidth
		r.Stroke(data, emit)
	} else {
		r.FillEvenOdd(data, emit)
	}
	return img
}
