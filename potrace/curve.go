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

package potrace

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// cos179 is the cosine of 179 degrees.
const cos179 = -0.999847695156

// curveElem is one vertex of the polygon, together with the curve
// segment which replaces it.
type curveElem struct {
	kind   SegmentKind
	c      [3]vec.Vec2 // c[2] is the end point of the segment
	vertex vec.Vec2
	alpha  float64 // smoothness, clipped to [0.55, 1]
	alpha0 float64 // smoothness before clipping
}

type privCurve struct {
	seg []curveElem
}

func newPrivCurve(m int) privCurve {
	return privCurve{seg: make([]curveElem, m)}
}

// reverse reverses the orientation of the polygon.
func (c *privCurve) reverse() {
	s := c.seg
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i].vertex, s[j].vertex = s[j].vertex, s[i].vertex
	}
}

// smooth decides for every vertex whether it is a corner, and replaces
// all other vertices by Bezier curves.
func (c *privCurve) smooth(alphaMax float64) {
	s := c.seg
	m := len(s)
	for i := range m {
		j := mod(i+1, m)
		k := mod(i+2, m)
		p4 := interval(0.5, s[k].vertex, s[j].vertex)

		var alpha float64
		denom := ddenom(s[i].vertex, s[k].vertex)
		if denom != 0 {
			dd := math.Abs(dpara(s[i].vertex, s[j].vertex, s[k].vertex) / denom)
			if dd > 1 {
				alpha = 1 - 1/dd
			}
			alpha /= 0.75
		} else {
			alpha = 4.0 / 3.0
		}
		s[j].alpha0 = alpha

		if alpha >= alphaMax {
			s[j].kind = Corner
			s[j].c[1] = s[j].vertex
			s[j].c[2] = p4
		} else {
			alpha = min(max(alpha, 0.55), 1)
			s[j].kind = Smooth
			s[j].c[0] = interval(0.5+0.5*alpha, s[i].vertex, s[j].vertex)
			s[j].c[1] = interval(0.5+0.5*alpha, s[k].vertex, s[j].vertex)
			s[j].c[2] = p4
		}
		s[j].alpha = alpha
	}
}

// opti describes a candidate Bezier segment replacing a run of segments.
type opti struct {
	pen   float64
	c     [2]vec.Vec2
	t, s  float64
	alpha float64
}

// optiPenalty tries to replace the segments from i+1/2 to j+1/2 by a
// single Bezier curve.  It returns false if this is not possible.
func (p *tracePath) optiPenalty(i, j int, tol float64, convc []int, areac []float64) (opti, bool) {
	var res opti
	seg := p.curve.seg
	m := len(seg)

	if i == j {
		return res, false
	}

	// the run must be convex, corner-free, and bend less than 179 degrees
	i1 := mod(i+1, m)
	k1 := i1
	conv := convc[k1]
	if conv == 0 {
		return res, false
	}
	d := ddist(seg[i].vertex, seg[i1].vertex)
	for k := k1; k != j; k = k1 {
		k1 = mod(k+1, m)
		k2 := mod(k+2, m)
		if convc[k1] != conv {
			return res, false
		}
		if int(fsign(cprod(seg[i].vertex, seg[i1].vertex, seg[k1].vertex, seg[k2].vertex))) != conv {
			return res, false
		}
		if iprod1(seg[i].vertex, seg[i1].vertex, seg[k1].vertex, seg[k2].vertex) <
			d*ddist(seg[k1].vertex, seg[k2].vertex)*cos179 {
			return res, false
		}
	}

	p0 := seg[mod(i, m)].c[2]
	p1 := seg[mod(i+1, m)].vertex
	p2 := seg[mod(j, m)].vertex
	p3 := seg[mod(j, m)].c[2]

	area := areac[j] - areac[i]
	area -= dpara(seg[0].vertex, seg[i].c[2], seg[j].c[2]) / 2
	if i >= j {
		area += areac[m]
	}

	// o is the intersection of p0p1 and p2p3, with
	// o = interval(t, p0, p1) = interval(s, p3, p2).
	A1 := dpara(p0, p1, p2)
	A2 := dpara(p0, p1, p3)
	A3 := dpara(p0, p2, p3)
	A4 := A1 + A3 - A2
	if A2 == A1 {
		return res, false
	}

	t := A3 / (A3 - A4)
	s := A2 / (A2 - A1)
	A := A2 * t / 2
	if A == 0 {
		return res, false
	}

	R := area / A
	alpha := 2 - math.Sqrt(4-R/0.3)

	res.c[0] = interval(t*alpha, p0, p1)
	res.c[1] = interval(s*alpha, p3, p2)
	res.alpha = alpha
	res.t = t
	res.s = s

	p1 = res.c[0]
	p2 = res.c[1]

	// the curve must stay close to the polygon edges
	for k := mod(i+1, m); k != j; k = k1 {
		k1 = mod(k+1, m)
		t := tangent(p0, p1, p2, p3, seg[k].vertex, seg[k1].vertex)
		if t < -0.5 {
			return res, false
		}
		pt := bezier(t, p0, p1, p2, p3)
		d := ddist(seg[k].vertex, seg[k1].vertex)
		if d == 0 {
			return res, false
		}
		d1 := dpara(seg[k].vertex, seg[k1].vertex, pt) / d
		if math.Abs(d1) > tol {
			return res, false
		}
		if iprod(seg[k].vertex, seg[k1].vertex, pt) < 0 || iprod(seg[k1].vertex, seg[k].vertex, pt) < 0 {
			return res, false
		}
		res.pen += d1 * d1
	}

	// and must not cut the corners of the old curve
	for k := i; k != j; k = k1 {
		k1 = mod(k+1, m)
		t := tangent(p0, p1, p2, p3, seg[k].c[2], seg[k1].c[2])
		if t < -0.5 {
			return res, false
		}
		pt := bezier(t, p0, p1, p2, p3)
		d := ddist(seg[k].c[2], seg[k1].c[2])
		if d == 0 {
			return res, false
		}
		d1 := dpara(seg[k].c[2], seg[k1].c[2], pt) / d
		d2 := dpara(seg[k].c[2], seg[k1].c[2], seg[k1].vertex) / d
		d2 *= 0.75 * seg[k1].alpha
		if d2 < 0 {
			d1 = -d1
			d2 = -d2
		}
		if d1 < d2-tol {
			return res, false
		}
		if d1 < d2 {
			res.pen += (d1 - d2) * (d1 - d2)
		}
	}

	return res, true
}

// optiCurve merges runs of Bezier segments where possible and returns
// the resulting curve.
func (p *tracePath) optiCurve(tol float64) privCurve {
	seg := p.curve.seg
	m := len(seg)

	pt := make([]int, m+1)
	pen := make([]float64, m+1)
	length := make([]int, m+1)
	opt := make([]opti, m+1)

	// convexity: +1 right turn, -1 left turn, 0 corner
	convc := make([]int, m)
	for i := range m {
		if seg[i].kind == Smooth {
			convc[i] = int(fsign(dpara(seg[mod(i-1, m)].vertex, seg[i].vertex, seg[mod(i+1, m)].vertex)))
		}
	}

	// cumulative areas, for fast area computation
	areac := make([]float64, m+1)
	area := 0.0
	v0 := seg[0].vertex
	for i := range m {
		i1 := mod(i+1, m)
		if seg[i1].kind == Smooth {
			alpha := seg[i1].alpha
			area += 0.3 * alpha * (4 - alpha) * dpara(seg[i].c[2], seg[i1].vertex, seg[i1].c[2]) / 2
			area += dpara(v0, seg[i].c[2], seg[i1].c[2]) / 2
		}
		areac[i+1] = area
	}

	pt[0] = -1
	for j := 1; j <= m; j++ {
		pt[j] = j - 1
		pen[j] = pen[j-1]
		length[j] = length[j-1] + 1

		for i := j - 2; i >= 0; i-- {
			o, ok := p.optiPenalty(i, mod(j, m), tol, convc, areac)
			if !ok {
				break
			}
			if length[j] > length[i]+1 || (length[j] == length[i]+1 && pen[j] > pen[i]+o.pen) {
				pt[j] = i
				pen[j] = pen[i] + o.pen
				length[j] = length[i] + 1
				opt[j] = o
			}
		}
	}

	om := length[m]
	res := newPrivCurve(om)
	j := m
	for i := om - 1; i >= 0; i-- {
		old := seg[mod(j, m)]
		if pt[j] == j-1 {
			res.seg[i] = old
		} else {
			res.seg[i] = curveElem{
				kind:   Smooth,
				c:      [3]vec.Vec2{opt[j].c[0], opt[j].c[1], old.c[2]},
				vertex: interval(opt[j].s, old.c[2], old.vertex),
				alpha:  opt[j].alpha,
				alpha0: opt[j].alpha,
			}
		}
		j = pt[j]
	}
	return res
}

// export converts the curve into its public representation.
func (c *privCurve) export(sign, area int) Curve {
	res := Curve{
		Sign: sign,
		Area: area,
	}
	m := len(c.seg)
	if m == 0 {
		return res
	}
	res.Start = c.seg[m-1].c[2]
	res.Segments = make([]Segment, m)
	for i, s := range c.seg {
		switch s.kind {
		case Corner:
			res.Segments[i] = Segment{Kind: Corner, C1: s.c[1], End: s.c[2]}
		default:
			res.Segments[i] = Segment{Kind: Smooth, C1: s.c[0], C2: s.c[1], End: s.c[2]}
		}
	}
	return res
}

// interval returns the point a + λ(b-a).
func interval(lambda float64, a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: a.X + lambda*(b.X-a.X),
		Y: a.Y + lambda*(b.Y-a.Y),
	}
}

// dorthInfty returns a direction 90 degrees counterclockwise from p2-p0,
// restricted to one of the eight major directions.
func dorthInfty(p0, p2 vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -fsign(p2.Y - p0.Y), Y: fsign(p2.X - p0.X)}
}

// dpara returns (p1-p0)×(p2-p0), the area of the parallelogram.
func dpara(p0, p1, p2 vec.Vec2) float64 {
	x1, y1 := p1.X-p0.X, p1.Y-p0.Y
	x2, y2 := p2.X-p0.X, p2.Y-p0.Y
	return x1*y2 - x2*y1
}

// ddenom is chosen so that the unit square centered at p1 intersects
// the line p0p2 iff |dpara(p0, p1, p2)| <= ddenom(p0, p2).
func ddenom(p0, p2 vec.Vec2) float64 {
	r := dorthInfty(p0, p2)
	return r.Y*(p2.X-p0.X) - r.X*(p2.Y-p0.Y)
}

// cprod returns (p1-p0)×(p3-p2).
func cprod(p0, p1, p2, p3 vec.Vec2) float64 {
	x1, y1 := p1.X-p0.X, p1.Y-p0.Y
	x2, y2 := p3.X-p2.X, p3.Y-p2.Y
	return x1*y2 - x2*y1
}

// iprod returns (p1-p0)·(p2-p0).
func iprod(p0, p1, p2 vec.Vec2) float64 {
	return p1.Sub(p0).Dot(p2.Sub(p0))
}

// iprod1 returns (p1-p0)·(p3-p2).
func iprod1(p0, p1, p2, p3 vec.Vec2) float64 {
	return p1.Sub(p0).Dot(p3.Sub(p2))
}

func ddist(p, q vec.Vec2) float64 {
	return p.Sub(q).Length()
}

// bezier evaluates the cubic Bezier curve (p0, p1, p2, p3) at t.
func bezier(t float64, p0, p1, p2, p3 vec.Vec2) vec.Vec2 {
	s := 1 - t
	return vec.Vec2{
		X: s*s*s*p0.X + 3*(s*s*t)*p1.X + 3*(t*t*s)*p2.X + t*t*t*p3.X,
		Y: s*s*s*p0.Y + 3*(s*s*t)*p1.Y + 3*(t*t*s)*p2.Y + t*t*t*p3.Y,
	}
}

// tangent returns the parameter t in [0, 1] at which the convex Bezier
// curve (p0, p1, p2, p3) is parallel to q1-q0, or -1 if there is none.
func tangent(p0, p1, p2, p3, q0, q1 vec.Vec2) float64 {
	A := cprod(p0, p1, q0, q1)
	B := cprod(p1, p2, q0, q1)
	C := cprod(p2, p3, q0, q1)

	a := A - 2*B + C
	b := -2*A + 2*B
	c := A

	d := b*b - 4*a*c
	if a == 0 || d < 0 {
		return -1
	}

	s := math.Sqrt(d)
	r1 := (-b + s) / (2 * a)
	r2 := (-b - s) / (2 * a)
	switch {
	case r1 >= 0 && r1 <= 1:
		return r1
	case r2 >= 0 && r2 <= 1:
		return r2
	default:
		return -1
	}
}

// mod returns a mod n, in the range 0, ..., n-1.
func mod(a, n int) int {
	if a >= n {
		return a % n
	}
	if a >= 0 {
		return a
	}
	return n - 1 - (-1-a)%n
}

// floordiv returns floor(a/n), for n > 0.
func floordiv(a, n int) int {
	if a >= 0 {
		return a / n
	}
	return -1 - (-1-a)/n
}

// cyclic reports whether a <= b < c, in the cyclic sense.
func cyclic(a, b, c int) bool {
	if a <= c {
		return a <= b && b < c
	}
	return a <= b || b < c
}

func xprod(p1, p2 lattice) int {
	return p1.x*p2.y - p1.y*p2.x
}

func isign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func fsign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
