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

// Package vectorize turns raster images into parametric curve equations.
//
// The conversion runs in three stages: edges are detected in the image
// ([edges.Extract]), the edge bitmap is traced into closed Bézier curves
// ([potrace.Trace]), and every curve segment is written as an equation
// ([equation.Synthesize]).  All stages are deterministic and keep no
// state between calls, so concurrent conversions are independent.
package vectorize

//go:generate go run ./testcases/export

import (
	"fmt"
	"image"

	"seehuhn.de/go/vectorize/bitmap"
	"seehuhn.de/go/vectorize/edges"
	"seehuhn.de/go/vectorize/equation"
	"seehuhn.de/go/vectorize/potrace"
)

// Result holds the output of all pipeline stages.
type Result struct {
	Edges     *bitmap.Bitmap
	Path      *potrace.Path
	Equations []string
}

// Run converts img into equations, using the default tracing parameters.
// See [edges.Extract] for the meaning of sensitivity.
//
// Errors are of type *[edges.InvalidImageError] or *[potrace.TraceError],
// wrapped with context.
func Run(img image.Image, sensitivity float64) (*Result, error) {
	return RunWithParams(img, sensitivity, nil)
}

// RunWithParams is like [Run], but allows to override the tracing
// parameters.  If params is nil, [potrace.DefaultParams] is used.
func RunWithParams(img image.Image, sensitivity float64, params *potrace.Params) (*Result, error) {
	bm, err := edges.Extract(img, sensitivity)
	if err != nil {
		return nil, fmt.Errorf("extract edges: %w", err)
	}
	p, err := potrace.Trace(bm, params)
	if err != nil {
		return nil, fmt.Errorf("trace edges: %w", err)
	}
	return &Result{
		Edges:     bm,
		Path:      p,
		Equations: equation.Synthesize(p),
	}, nil
}

// RunShapes traces the dark regions of img directly, skipping edge
// detection.  Pixels darker than mid-gray are set.  Result.Edges holds
// this thresholded bitmap.  If params is nil, [potrace.DefaultParams] is
// used.
func RunShapes(img image.Image, params *potrace.Params) (*Result, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &edges.InvalidImageError{Width: b.Dx(), Height: b.Dy()}
	}
	bm := bitmap.FromImage(img)
	p, err := potrace.Trace(bm, params)
	if err != nil {
		return nil, fmt.Errorf("trace shapes: %w", err)
	}
	return &Result{
		Edges:     bm,
		Path:      p,
		Equations: equation.Synthesize(p),
	}, nil
}
