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

// Package bitmap implements the binary grid passed from the edge detector
// to the contour tracer.
//
// Row 0 of a Bitmap is the bottom row of the picture, so that coordinates
// derived from a Bitmap use an upward-increasing y axis.
package bitmap

import (
	"image"
	"image/color"
)

// Bitmap is a two-dimensional grid of pixel values, stored row by row.
// A value of 0 means background, any other value means "set".
// Tracing code treats values greater than 1 as 1, see [Bitmap.Normalize].
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates an empty bitmap of the given size.
func New(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Valid reports whether the dimensions of b match the length of its pixel
// slice.
func (b *Bitmap) Valid() bool {
	return b != nil && b.Width >= 0 && b.Height >= 0 && len(b.Pix) == b.Width*b.Height
}

// Get reports whether pixel (x, y) is set.
// Pixels outside the bitmap are never set.
func (b *Bitmap) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Pix[y*b.Width+x] != 0
}

// Set changes the value of pixel (x, y).  Out of range coordinates are
// ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	var v uint8
	if on {
		v = 1
	}
	b.Pix[y*b.Width+x] = v
}

// Flip toggles pixel (x, y).
func (b *Bitmap) Flip(x, y int) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := y*b.Width + x
	if b.Pix[i] != 0 {
		b.Pix[i] = 0
	} else {
		b.Pix[i] = 1
	}
}

// Clone returns a deep copy of b.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		Width:  b.Width,
		Height: b.Height,
		Pix:    append([]uint8(nil), b.Pix...),
	}
}

// Normalize clamps all pixel values greater than 1 to 1.
func (b *Bitmap) Normalize() {
	for i, v := range b.Pix {
		if v > 1 {
			b.Pix[i] = 1
		}
	}
}

// FlipVertical reverses the order of the rows in place.
func (b *Bitmap) FlipVertical() {
	w := b.Width
	for top, bot := 0, b.Height-1; top < bot; top, bot = top+1, bot-1 {
		r1 := b.Pix[top*w : (top+1)*w]
		r2 := b.Pix[bot*w : (bot+1)*w]
		for i := range r1 {
			r1[i], r2[i] = r2[i], r1[i]
		}
	}
}

// Count returns the number of set pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no pixel is set.
func (b *Bitmap) IsEmpty() bool {
	for _, v := range b.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// Image converts the bitmap into a grayscale picture, with set pixels
// shown white on black.  Row 0 of the bitmap becomes the bottom row
// of the image.
func (b *Bitmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := range b.Height {
		row := img.Pix[(b.Height-1-y)*img.Stride:]
		for x := range b.Width {
			if b.Pix[y*b.Width+x] != 0 {
				row[x] = 255
			}
		}
	}
	return img
}

// FromImage thresholds img at mid-gray and returns the dark pixels as a
// bitmap.  Row 0 of the result corresponds to the bottom row of img.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b := New(w, h)
	for y := range h {
		by := h - 1 - y
		for x := range w {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			if g.Y < 128 {
				b.Pix[by*w+x] = 1
			}
		}
	}
	return b
}
