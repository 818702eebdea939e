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

// infinity is longer than any path.
const infinity = 10000000

type sum struct {
	x, y, x2, xy, y2 float64
}

// calcSums fills in the prefix sums used for fast least-squares fits.
func (p *tracePath) calcSums() {
	n := len(p.pt)
	p.x0, p.y0 = p.pt[0].x, p.pt[0].y
	p.sums = make([]sum, n+1)
	for i, q := range p.pt {
		x := float64(q.x - p.x0)
		y := float64(q.y - p.y0)
		s := p.sums[i]
		p.sums[i+1] = sum{
			x:  s.x + x,
			y:  s.y + y,
			x2: s.x2 + x*x,
			xy: s.xy + x*y,
			y2: s.y2 + y*y,
		}
	}
}

// calcLon computes, for every point i of the path, the furthest point
// lon[i] such that the sub-path i..lon[i] is straight.
func (p *tracePath) calcLon() {
	pt := p.pt
	n := len(pt)

	// nc[i] is the furthest point reachable from i by a single horizontal
	// or vertical segment
	nc := make([]int, n)
	k := 0
	for i := n - 1; i >= 0; i-- {
		if pt[i].x != pt[k].x && pt[i].y != pt[k].y {
			k = i + 1
		}
		nc[i] = k
	}

	pivk := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		pivk[i] = p.pivot(i, nc)
	}

	p.lon = make([]int, n)
	j := pivk[n-1]
	p.lon[n-1] = j
	for i := n - 2; i >= 0; i-- {
		if cyclic(i+1, pivk[i], j) {
			j = pivk[i]
		}
		p.lon[i] = j
	}
	for i := n - 1; cyclic(mod(i+1, n), j, p.lon[i]); i-- {
		p.lon[i] = j
	}
}

// pivot returns the last point k such that the path from i to k is
// straight.
func (p *tracePath) pivot(i int, nc []int) int {
	pt := p.pt
	n := len(pt)

	// directions which have occurred so far
	var ct [4]int
	var constraint [2]lattice

	next := pt[mod(i+1, n)]
	ct[(3+3*(next.x-pt[i].x)+(next.y-pt[i].y))/2]++

	k := nc[i]
	k1 := i
	for {
		ct[(3+3*isign(pt[k].x-pt[k1].x)+isign(pt[k].y-pt[k1].y))/2]++
		if ct[0] != 0 && ct[1] != 0 && ct[2] != 0 && ct[3] != 0 {
			return k1
		}

		cur := lattice{pt[k].x - pt[i].x, pt[k].y - pt[i].y}
		if xprod(constraint[0], cur) < 0 || xprod(constraint[1], cur) > 0 {
			break
		}

		if iabs(cur.x) > 1 || iabs(cur.y) > 1 {
			var off lattice
			off.x = cur.x + pick(cur.y >= 0 && (cur.y > 0 || cur.x < 0))
			off.y = cur.y + pick(cur.x <= 0 && (cur.x < 0 || cur.y < 0))
			if xprod(constraint[0], off) >= 0 {
				constraint[0] = off
			}
			off.x = cur.x + pick(cur.y <= 0 && (cur.y < 0 || cur.x < 0))
			off.y = cur.y + pick(cur.x >= 0 && (cur.x > 0 || cur.y < 0))
			if xprod(constraint[1], off) <= 0 {
				constraint[1] = off
			}
		}

		k1 = k
		k = nc[k1]
		if !cyclic(k, i, k1) {
			break
		}
	}

	// k1 was the last corner satisfying the constraint and k is the first
	// one violating it.  Find the last point on k1..k which satisfies it.
	dk := lattice{isign(pt[k].x - pt[k1].x), isign(pt[k].y - pt[k1].y)}
	cur := lattice{pt[k1].x - pt[i].x, pt[k1].y - pt[i].y}

	// largest j with a+j*b >= 0 and c+j*d <= 0
	a := xprod(constraint[0], cur)
	b := xprod(constraint[0], dk)
	c := xprod(constraint[1], cur)
	d := xprod(constraint[1], dk)
	j := infinity
	if b < 0 {
		j = floordiv(a, -b)
	}
	if d > 0 {
		j = min(j, floordiv(-c, d))
	}
	return mod(k1+j, n)
}

func pick(cond bool) int {
	if cond {
		return 1
	}
	return -1
}

// penalty3 measures how badly the straight line from point i to point j
// fits the path between them.  Assumes 0 <= i < j <= n.
func (p *tracePath) penalty3(i, j int) float64 {
	n := len(p.pt)
	pt := p.pt
	sums := p.sums

	var x, y, x2, xy, y2, k float64
	if j >= n {
		j -= n
		x = sums[j+1].x - sums[i].x + sums[n].x
		y = sums[j+1].y - sums[i].y + sums[n].y
		x2 = sums[j+1].x2 - sums[i].x2 + sums[n].x2
		xy = sums[j+1].xy - sums[i].xy + sums[n].xy
		y2 = sums[j+1].y2 - sums[i].y2 + sums[n].y2
		k = float64(j + 1 - i + n)
	} else {
		x = sums[j+1].x - sums[i].x
		y = sums[j+1].y - sums[i].y
		x2 = sums[j+1].x2 - sums[i].x2
		xy = sums[j+1].xy - sums[i].xy
		y2 = sums[j+1].y2 - sums[i].y2
		k = float64(j + 1 - i)
	}

	px := float64(pt[i].x+pt[j].x)/2 - float64(pt[0].x)
	py := float64(pt[i].y+pt[j].y)/2 - float64(pt[0].y)
	ey := float64(pt[j].x - pt[i].x)
	ex := -float64(pt[j].y - pt[i].y)

	a := (x2-2*x*px)/k + px*px
	b := (xy-x*py-y*px)/k + px*py
	c := (y2-2*y*py)/k + py*py

	s := ex*ex*a + 2*ex*ey*b + ey*ey*c
	return math.Sqrt(max(s, 0))
}

// bestPolygon finds the polygon with the fewest vertices whose edges are
// straight sub-paths, and among those the one with the smallest penalty.
func (p *tracePath) bestPolygon() {
	n := len(p.pt)

	pen := make([]float64, n+1)
	prev := make([]int, n+1)
	clip0 := make([]int, n)
	clip1 := make([]int, n+1)
	seg0 := make([]int, n+1)
	seg1 := make([]int, n+1)

	// forward clipping: the furthest point reachable from i by one edge
	for i := range n {
		c := mod(p.lon[mod(i-1, n)]-1, n)
		if c == i {
			c = mod(i+1, n)
		}
		if c < i {
			clip0[i] = n
		} else {
			clip0[i] = c
		}
	}

	// backward clipping: j <= clip0[i] iff clip1[j] <= i
	j := 1
	for i := range n {
		for j <= clip0[i] {
			clip1[j] = i
			j++
		}
	}

	// seg0[j] is the furthest point reachable from 0 with j edges
	i := 0
	for j = 0; i < n; j++ {
		seg0[j] = i
		i = clip0[i]
	}
	seg0[j] = n
	m := j

	// seg1[j] is the earliest point from which n is reachable with m-j edges
	i = n
	for j = m; j > 0; j-- {
		seg1[j] = i
		i = clip1[i]
	}
	seg1[0] = 0

	pen[0] = 0
	for j = 1; j <= m; j++ {
		for i = seg1[j]; i <= seg0[j]; i++ {
			best := -1.0
			for k := seg0[j-1]; k >= clip1[i]; k-- {
				thisPen := p.penalty3(k, i) + pen[k]
				if best < 0 || thisPen < best {
					prev[i] = k
					best = thisPen
				}
			}
			pen[i] = best
		}
	}

	p.po = make([]int, m)
	for i, j = n, m-1; i > 0; j-- {
		i = prev[i]
		p.po[j] = i
	}
}

// pointSlope fits a straight line to the points i..j of the path and
// returns a point on the line together with its direction.
// The center is relative to (x0, y0).
func (p *tracePath) pointSlope(i, j int) (ctr, dir vec.Vec2) {
	n := len(p.pt)
	sums := p.sums

	r := 0 // rotations from i to j
	for j >= n {
		j -= n
		r++
	}
	for i >= n {
		i -= n
		r--
	}
	for j < 0 {
		j += n
		r--
	}
	for i < 0 {
		i += n
		r++
	}

	rf := float64(r)
	x := sums[j+1].x - sums[i].x + rf*sums[n].x
	y := sums[j+1].y - sums[i].y + rf*sums[n].y
	x2 := sums[j+1].x2 - sums[i].x2 + rf*sums[n].x2
	xy := sums[j+1].xy - sums[i].xy + rf*sums[n].xy
	y2 := sums[j+1].y2 - sums[i].y2 + rf*sums[n].y2
	k := float64(j + 1 - i + r*n)

	ctr = vec.Vec2{X: x / k, Y: y / k}

	a := (x2 - x*x/k) / k
	b := (xy - x*y/k) / k
	c := (y2 - y*y/k) / k

	// larger eigenvalue, and its eigenvector
	lambda2 := (a + c + math.Sqrt((a-c)*(a-c)+4*b*b)) / 2
	a -= lambda2
	c -= lambda2

	if math.Abs(a) >= math.Abs(c) {
		l := math.Sqrt(a*a + b*b)
		if l != 0 {
			dir = vec.Vec2{X: -b / l, Y: a / l}
		}
	} else {
		l := math.Sqrt(c*c + b*b)
		if l != 0 {
			dir = vec.Vec2{X: -c / l, Y: b / l}
		}
	}
	// dir stays zero if the two eigenvalues coincide
	return ctr, dir
}

// quadForm is an affine quadratic form, represented as a symmetric 3x3
// matrix.  The value at (x, y) is v^T Q v with v = (x, y, 1).
type quadForm [3][3]float64

func (q *quadForm) eval(w vec.Vec2) float64 {
	v := [3]float64{w.X, w.Y, 1}
	var s float64
	for i := range 3 {
		for j := range 3 {
			s += v[i] * q[i][j] * v[j]
		}
	}
	return s
}

// adjustVertices moves each polygon vertex to the point inside its unit
// square which is closest to the two adjacent fitted lines.
func (p *tracePath) adjustVertices() {
	m := len(p.po)
	po := p.po
	n := len(p.pt)
	pt := p.pt
	x0, y0 := float64(p.x0), float64(p.y0)

	ctr := make([]vec.Vec2, m)
	dir := make([]vec.Vec2, m)
	q := make([]quadForm, m)

	p.curve = newPrivCurve(m)

	for i := range m {
		j := po[mod(i+1, m)]
		j = mod(j-po[i], n) + po[i]
		ctr[i], dir[i] = p.pointSlope(po[i], j)
	}

	// distance from line i, as a quadratic form
	for i := range m {
		d := dir[i].X*dir[i].X + dir[i].Y*dir[i].Y
		if d == 0 {
			continue
		}
		v := [3]float64{dir[i].Y, -dir[i].X, 0}
		v[2] = -v[1]*ctr[i].Y - v[0]*ctr[i].X
		for l := range 3 {
			for k := range 3 {
				q[i][l][k] = v[l] * v[k] / d
			}
		}
	}

	for i := range m {
		s := vec.Vec2{X: float64(pt[po[i]].x) - x0, Y: float64(pt[po[i]].y) - y0}

		j := mod(i-1, m)
		var Q quadForm
		for l := range 3 {
			for k := range 3 {
				Q[l][k] = q[j][l][k] + q[i][l][k]
			}
		}

		var w vec.Vec2
		for {
			det := Q[0][0]*Q[1][1] - Q[0][1]*Q[1][0]
			if det != 0 {
				w.X = (-Q[0][2]*Q[1][1] + Q[1][2]*Q[0][1]) / det
				w.Y = (Q[0][2]*Q[1][0] - Q[1][2]*Q[0][0]) / det
				break
			}

			// The lines are parallel.  Add an orthogonal axis through
			// the center of the unit square.
			var v [3]float64
			if Q[0][0] > Q[1][1] {
				v[0], v[1] = -Q[0][1], Q[0][0]
			} else if Q[1][1] != 0 {
				v[0], v[1] = -Q[1][1], Q[1][0]
			} else {
				v[0], v[1] = 1, 0
			}
			d := v[0]*v[0] + v[1]*v[1]
			v[2] = -v[1]*s.Y - v[0]*s.X
			for l := range 3 {
				for k := range 3 {
					Q[l][k] += v[l] * v[k] / d
				}
			}
		}

		if math.Abs(w.X-s.X) <= 0.5 && math.Abs(w.Y-s.Y) <= 0.5 {
			p.curve.seg[i].vertex = vec.Vec2{X: w.X + x0, Y: w.Y + y0}
			continue
		}

		// The minimum is outside the unit square, search its boundary.
		best := Q.eval(s)
		bestPt := s
		if Q[0][0] != 0 {
			for z := range 2 {
				w.Y = s.Y - 0.5 + float64(z)
				w.X = -(Q[0][1]*w.Y + Q[0][2]) / Q[0][0]
				if cand := Q.eval(w); math.Abs(w.X-s.X) <= 0.5 && cand < best {
					best = cand
					bestPt = w
				}
			}
		}
		if Q[1][1] != 0 {
			for z := range 2 {
				w.X = s.X - 0.5 + float64(z)
				w.Y = -(Q[1][0]*w.X + Q[1][2]) / Q[1][1]
				if cand := Q.eval(w); math.Abs(w.Y-s.Y) <= 0.5 && cand < best {
					best = cand
					bestPt = w
				}
			}
		}
		for l := range 2 {
			for k := range 2 {
				w = vec.Vec2{X: s.X - 0.5 + float64(l), Y: s.Y - 0.5 + float64(k)}
				if cand := Q.eval(w); cand < best {
					best = cand
					bestPt = w
				}
			}
		}
		p.curve.seg[i].vertex = vec.Vec2{X: bestPt.X + x0, Y: bestPt.Y + y0}
	}
}
