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

//go:build gocv

package edges

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"seehuhn.de/go/vectorize/bitmap"
)

// ExtractCV is like [Extract], but uses OpenCV for filtering and edge
// detection.  This is only available when building with the "gocv" tag.
func ExtractCV(img image.Image, sensitivity float64) (*bitmap.Bitmap, error) {
	if img == nil {
		return nil, &InvalidImageError{}
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, &InvalidImageError{Width: w, Height: h}
	}

	src, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer src.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	g := &image.Gray{
		Pix:    gray.ToBytes(),
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
	lower, upper := Thresholds(Median(g), sensitivity)

	smooth := gocv.NewMat()
	defer smooth.Close()
	gocv.BilateralFilter(gray, &smooth, bilateralDiameter, sigmaColor, sigmaSpace)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.CannyWithParams(smooth, &edges, float32(lower), float32(upper), 3, true)

	flipped := gocv.NewMat()
	defer flipped.Close()
	gocv.Flip(edges, &flipped, 0)

	bm := bitmap.New(w, h)
	for i, v := range flipped.ToBytes() {
		if v != 0 {
			bm.Pix[i] = 1
		}
	}
	return bm, nil
}
