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

package preview

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Default values for rasterizer parameters.
const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// flatEdge is the minimum vertical extent for an edge to contribute
	// to coverage.
	flatEdge = 1e-10
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer converts paths into anti-aliased pixel coverage values.
// Coverage is the fraction of a pixel's area inside the shape, from 0
// to 1.  Buffers are reused between calls, so a single Rasterizer
// should be used for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a
	// curve and the polygon used to approximate it.
	Flatness float64

	// Width is the line width in user space units, used by Stroke.
	Width float64

	cover  []float32 // signed coverage change per pixel, reused for output
	area   []float32 // coverage within the pixel
	edges  []edge
	active []int

	// stroke outlines, all polygons stored back to back
	outline     []vec.Vec2
	outlineEnds []int
	polyline    []vec.Vec2

	bboxEmpty                  bool
	bxMin, bxMax, byMin, byMax float64
}

// NewRasterizer returns a Rasterizer which draws into the given clip
// rectangle, with an identity CTM and unit line width.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
	}
}

// Reset prepares the rasterizer for a new image, keeping the allocated
// buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
}

// FillNonZero fills p using the nonzero winding rule.  Coverage is
// passed to emit one row at a time, the slice is only valid during the
// call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	r.walk(p, r.addEdge)
	r.scan(integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.  Coverage is passed to
// emit one row at a time, the slice is only valid during the call.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	r.walk(p, r.addEdge)
	r.scan(integrateEvenOdd, emit)
}

// walk flattens all curves in p and calls line for every resulting line
// segment, in user space.  Open subpaths are closed implicitly.
func (r *Rasterizer) walk(p *path.Data, line func(a, b vec.Vec2)) {
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				line(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			line(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// degree elevation
			c1 := cur.Add(p.Coords[k].Sub(cur).Mul(2.0 / 3))
			c2 := p.Coords[k+1].Add(p.Coords[k].Sub(p.Coords[k+1]).Mul(2.0 / 3))
			r.flattenCubic(cur, c1, c2, p.Coords[k+1], line)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], line)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				line(cur, start)
			}
			cur = start
			open = false
		}
	}
	if open && cur != start {
		line(cur, start)
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments.  The
// number of segments is chosen with Wang's formula, so that the error in
// device space stays below r.Flatness.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, q)
		prev = q
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms the segment from a to b into device space and adds
// it to the edge list.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < flatEdge {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// Coverage accumulation:
//
// For every pixel of a scanline two values are collected.  cover is the
// signed vertical extent of all edge pieces inside the pixel, area is
// the same quantity weighted by the part of the pixel to the right of the
// edge.  Summing cover from the left and adding area gives the signed
// area of the shape inside each pixel.

// scan converts the collected edges into coverage values, using an
// active edge list.
func (r *Rasterizer) scan(integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if accumulate(e, top, bot, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the part of e between the horizontal lines top and bot
// to the cover and area buffers, which represent the pixels xMin, ...,
// xMax-1.  Contributions left of xMin are collected in the first pixel.
// The return value indicates whether e intersects the scanline.
func accumulate(e *edge, top, bot float64, cover, area []float32, xMin, xMax int) bool {
	top = max(top, e.yMin())
	bot = min(bot, e.yMax())
	if bot <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	add := func(pix int, y0, y1 float64) {
		c := sign * float32(y1-y0)
		switch {
		case pix < xMin:
			cover[0] += c
			area[0] += c
		case pix < xMax:
			xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
			frac := xMid - float64(pix)
			cover[pix-xMin] += c
			area[pix-xMin] += c * float32(1-frac)
		}
	}

	switch {
	case right < xMin:
		add(right, top, bot)
		return true
	case left >= xMax:
		return true
	case left == right:
		add(left, top, bot)
		return true
	}

	// split the edge at the pixel boundaries
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi > lo {
			add(pix, lo, hi)
		}
	}
	return true
}

// integrateNonZero turns the cover and area buffers into coverage
// values, using the nonzero winding rule.  The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd is like integrateNonZero, but for the even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		cover[i] = 1 - abs32(1-v)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips leading and trailing zeros from a row of coverage
// values.  It returns nil if all values are zero.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}
