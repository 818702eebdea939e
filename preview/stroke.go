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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// zeroLength is the minimum length of a stroked line segment.
const zeroLength = 1e-10

// Stroke draws the outline of p with round caps and round joins, using
// the line width r.Width.  Coverage is passed to emit one row at a time,
// the slice is only valid during the call.
//
// Every flattened line segment is widened into a capsule, and the union
// of all capsules is filled.  Since all capsules have the same
// orientation, the nonzero rule gives the union.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	d := r.Width / 2
	if !(d > 0) {
		return
	}

	r.outline = r.outline[:0]
	r.outlineEnds = r.outlineEnds[:0]
	r.polyline = r.polyline[:0]

	flush := func() {
		r.strokePolyline(r.polyline, d)
		r.polyline = r.polyline[:0]
	}
	line := func(a, b vec.Vec2) {
		if len(r.polyline) == 0 {
			r.polyline = append(r.polyline, a)
		}
		r.polyline = append(r.polyline, b)
	}

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur = p.Coords[k]
			start = cur
			r.polyline = append(r.polyline, cur)
			k++
		case path.CmdLineTo:
			line(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
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
			line(cur, start)
			flush()
			cur = start
		}
	}
	flush()

	r.beginEdges()
	first := 0
	for _, end := range r.outlineEnds {
		poly := r.outline[first:end]
		for i, a := range poly {
			r.addEdge(a, poly[(i+1)%len(poly)])
		}
		first = end
	}
	r.scan(integrateNonZero, emit)
}

// strokePolyline adds the outline polygons for the polyline pts.
// A polyline without extent is drawn as a dot.
func (r *Rasterizer) strokePolyline(pts []vec.Vec2, d float64) {
	if len(pts) == 0 {
		return
	}
	drawn := false
	for i := 1; i < len(pts); i++ {
		if r.addCapsule(pts[i-1], pts[i], d) {
			drawn = true
		}
	}
	if !drawn {
		r.addDot(pts[0], d)
	}
}

// addCapsule adds the outline of the set of points with distance at most
// d from the segment ab, in counter-clockwise order.
func (r *Rasterizer) addCapsule(a, b vec.Vec2, d float64) bool {
	t := b.Sub(a)
	l := t.Length()
	if l < zeroLength {
		return false
	}
	t = t.Mul(1 / l)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	r.outline = append(r.outline, a.Sub(n.Mul(d)), b.Sub(n.Mul(d)))
	r.addArc(b, d, n.Mul(-1), math.Pi)
	r.outline = append(r.outline, a.Add(n.Mul(d)))
	r.addArc(a, d, n, math.Pi)
	r.outlineEnds = append(r.outlineEnds, len(r.outline))
	return true
}

func (r *Rasterizer) addDot(c vec.Vec2, d float64) {
	dir := vec.Vec2{X: 1}
	r.outline = append(r.outline, c.Add(dir.Mul(d)))
	r.addArc(c, d, dir, 2*math.Pi)
	r.outlineEnds = append(r.outlineEnds, len(r.outline))
}

// addArc appends points on the circle with the given center and radius,
// starting after the point in direction startDir and turning
// counter-clockwise by sweep radians.  The caller adds the start point.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length())

	// A chord for the angle θ deviates from the circle by r(1-cos(θ/2)).
	step := math.Pi / 4
	if devRadius > r.Flatness {
		step = min(step, 2*math.Acos(1-r.Flatness/devRadius))
	}
	n := max(int(math.Ceil(sweep/step)), 1)

	dt := sweep / float64(n)
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
