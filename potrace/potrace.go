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

// Package potrace converts binary bitmaps into closed vector outlines,
// following Peter Selinger's potrace algorithm.
//
// Tracing happens in five stages:
//  1. the bitmap is decomposed into closed boundary paths on the pixel lattice,
//  2. for every path the optimal polygon is found,
//  3. polygon vertices are moved off the lattice to better fit the boundary,
//  4. each vertex is classified as a corner or replaced by a Bezier curve,
//  5. consecutive Bezier curves are merged where the result stays within
//     a given tolerance.
//
// All coordinates use the coordinate system of the bitmap: pixel (x, y)
// covers the unit square [x, x+1] × [y, y+1].
package potrace

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vectorize/bitmap"
)

// TurnPolicy decides which way the boundary walk turns at pixel
// junctions where both choices are possible.
type TurnPolicy int

// These are the supported turn policies.
const (
	TurnBlack    TurnPolicy = iota // prefer to connect set pixels
	TurnWhite                      // prefer to connect background pixels
	TurnLeft                       // always take a left turn
	TurnRight                      // always take a right turn
	TurnMinority                   // prefer to connect the locally less common color
	TurnMajority                   // prefer to connect the locally more common color
	TurnRandom                     // deterministic pseudo-random choice
)

func (p TurnPolicy) String() string {
	switch p {
	case TurnBlack:
		return "black"
	case TurnWhite:
		return "white"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnMinority:
		return "minority"
	case TurnMajority:
		return "majority"
	case TurnRandom:
		return "random"
	default:
		return fmt.Sprintf("TurnPolicy(%d)", int(p))
	}
}

// Params holds the tuning parameters for [Trace].
type Params struct {
	// TurdSize is the largest area (in pixels) of regions which are
	// discarded as noise.
	TurdSize int

	// TurnPolicy resolves ambiguous junctions during path decomposition.
	TurnPolicy TurnPolicy

	// AlphaMax is the corner threshold.  Vertices whose smoothness
	// parameter reaches AlphaMax become corners.  Larger values give
	// fewer corners.
	AlphaMax float64

	// OptiCurve enables merging of consecutive Bezier segments.
	OptiCurve bool

	// OptTolerance is the maximal deviation, in pixels, allowed when
	// merging Bezier segments.
	OptTolerance float64
}

// DefaultParams are the parameters used when nil is passed to [Trace].
var DefaultParams = Params{
	TurdSize:     2,
	TurnPolicy:   TurnMinority,
	AlphaMax:     1.0,
	OptiCurve:    true,
	OptTolerance: 0.5,
}

// SegmentKind distinguishes the two types of curve segments.
type SegmentKind int

// These are the possible segment kinds.
const (
	Corner SegmentKind = iota + 1
	Smooth
)

func (k SegmentKind) String() string {
	switch k {
	case Corner:
		return "corner"
	case Smooth:
		return "smooth"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one piece of a traced curve.  The start point of a segment
// is the end point of the previous segment, or Curve.Start for the
// first segment.
//
// For a Corner, C1 is the corner vertex and the segment consists of the
// two straight lines start→C1→End.  C2 is unused.
// For a Smooth segment, C1 and C2 are the control points of the cubic
// Bezier curve from start to End.
type Segment struct {
	Kind SegmentKind
	C1   vec.Vec2
	C2   vec.Vec2
	End  vec.Vec2
}

// Curve is a closed loop of segments.
type Curve struct {
	Start    vec.Vec2
	Segments []Segment

	// Sign is +1 for the outline of a set region and -1 for the outline
	// of a hole.
	Sign int

	// Area is the number of pixels enclosed by the lattice path this curve
	// was traced from.
	Area int
}

// Path is the result of tracing a bitmap.
type Path struct {
	Curves []Curve
}

// TraceError is returned when a bitmap cannot be traced.
type TraceError struct {
	Reason string
}

func (err *TraceError) Error() string {
	return "potrace: " + err.Reason
}

// Trace converts the set pixels of bm into vector curves.
// If params is nil, DefaultParams are used.
//
// Pixel values greater than 1 are treated as 1.  The bitmap is not
// modified.  A bitmap without set pixels gives a Path with no curves.
func Trace(bm *bitmap.Bitmap, params *Params) (*Path, error) {
	if params == nil {
		params = &DefaultParams
	}
	if !bm.Valid() {
		if bm == nil {
			return nil, &TraceError{Reason: "nil bitmap"}
		}
		return nil, &TraceError{
			Reason: fmt.Sprintf("malformed %dx%d bitmap with %d pixels",
				bm.Width, bm.Height, len(bm.Pix)),
		}
	}
	if params.TurdSize < 0 || params.AlphaMax < 0 || params.OptTolerance < 0 {
		return nil, &TraceError{Reason: "invalid parameters"}
	}

	work := bm.Clone()
	work.Normalize()

	res := &Path{}
	for _, pp := range decompose(work, params) {
		pp.calcSums()
		pp.calcLon()
		pp.bestPolygon()
		pp.adjustVertices()
		if pp.sign < 0 {
			pp.curve.reverse()
		}
		pp.curve.smooth(params.AlphaMax)
		final := pp.curve
		if params.OptiCurve {
			final = pp.optiCurve(params.OptTolerance)
		}
		res.Curves = append(res.Curves, final.export(pp.sign, pp.area))
	}
	return res, nil
}
