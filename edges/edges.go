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

// Package edges finds the outlines in a color image.
//
// The image is converted to grayscale, smoothed with an edge-preserving
// bilateral filter and then passed to a Canny edge detector.  The
// hysteresis thresholds of the detector are derived from the median
// brightness of the image.
package edges

import (
	"fmt"
	"image"

	"seehuhn.de/go/vectorize/bitmap"
)

// DefaultSensitivity is the sensitivity used when the caller has no
// preference.
const DefaultSensitivity = 0.33

// Limits for the median brightness used to derive thresholds.
const (
	minMedian = 10
	maxMedian = 245
)

// Parameters of the bilateral filter.
const (
	bilateralDiameter = 5
	sigmaColor        = 50.0
	sigmaSpace        = 50.0
)

// InvalidImageError is returned for images which cannot be processed,
// for example because they have no pixels.
type InvalidImageError struct {
	Width, Height int
}

func (err *InvalidImageError) Error() string {
	return fmt.Sprintf("edges: invalid %dx%d image", err.Width, err.Height)
}

// Extract returns the edges of img as a bitmap of the same size.
// Edge pixels have value 1, all other pixels are 0.
//
// Row 0 of the result is the bottom row of img.
//
// Sensitivity controls how far the hysteresis thresholds are spread
// around the median brightness.  Values in the open interval (0, 1) are
// useful; other values are accepted but give poor results.
func Extract(img image.Image, sensitivity float64) (*bitmap.Bitmap, error) {
	if img == nil {
		return nil, &InvalidImageError{}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &InvalidImageError{Width: b.Dx(), Height: b.Dy()}
	}

	gray := toGray(img)
	lower, upper := Thresholds(Median(gray), sensitivity)
	smooth := bilateral(gray, bilateralDiameter, sigmaColor, sigmaSpace)
	bm := canny(smooth, lower, upper)
	bm.FlipVertical()
	return bm, nil
}

// Thresholds computes the lower and upper hysteresis thresholds for
// the given median brightness.  Both values are clamped to the range
// 0, ..., 255, and lower <= upper always holds.
func Thresholds(median, sensitivity float64) (lower, upper int) {
	lower = int(clamp((1-sensitivity)*median, 0, 255))
	upper = int(clamp((1+sensitivity)*median, 0, 255))
	if lower > upper {
		lower, upper = upper, lower
	}
	return lower, upper
}

// clamp restricts x to the interval [lo, hi].  NaN is mapped to lo.
func clamp(x, lo, hi float64) float64 {
	if !(x > lo) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
