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
	"math/bits"

	"seehuhn.de/go/vectorize/bitmap"
)

// lattice is a point on the integer pixel grid.
type lattice struct {
	x, y int
}

// tracePath holds one boundary path while it moves through the stages of
// the tracer.
type tracePath struct {
	pt   []lattice // boundary, as extracted from the bitmap
	area int
	sign int // +1 for outlines of set regions, -1 for holes

	x0, y0 int   // origin for sums
	sums   []sum // prefix sums over pt, len(pt)+1 entries
	lon    []int // (i, lon[i]) is the longest straight line from i
	po     []int // indices of the optimal polygon vertices

	curve privCurve
}

// decompose finds all boundary paths in bm.  Paths enclosing at most
// params.TurdSize pixels are dropped.
//
// Paths are returned in tree order: each outline is followed by the
// holes directly inside it, then come the remaining outlines of the same
// level, and the outlines nested inside holes follow after that.
func decompose(bm *bitmap.Bitmap, params *Params) []*tracePath {
	work := bm.Clone()

	var res []*tracePath
	x, y := 0, bm.Height-1
	for {
		var ok bool
		x, y, ok = findNext(work, x, y)
		if !ok {
			break
		}

		sign := -1
		if bm.Get(x, y) {
			sign = 1
		}
		p := findPath(work, x, y+1, sign, params.TurnPolicy)
		xorPath(work, p)

		if p.area > params.TurdSize {
			res = append(res, p)
		}
	}

	clear(work.Pix)
	return flattenTree(buildTree(res, work))
}

// pathNode is a path together with the paths directly inside it.
type pathNode struct {
	p        *tracePath
	children []*pathNode
}

// buildTree arranges paths, given in discovery order, into a tree by
// inclusion.  The scratch bitmap must be clear, and is clear again on
// return.
func buildTree(paths []*tracePath, scratch *bitmap.Bitmap) []*pathNode {
	var res []*pathNode
	for len(paths) > 0 {
		head := paths[0]
		xorPath(scratch, head)
		x0, y0, x1, y1 := pathBBox(head)

		var in, out []*tracePath
		for i, p := range paths[1:] {
			// Paths are discovered from the top, so nothing from here
			// on can be inside head.
			if p.pt[0].y <= y0 {
				out = append(out, paths[1+i:]...)
				break
			}
			if scratch.Get(p.pt[0].x, p.pt[0].y-1) {
				in = append(in, p)
			} else {
				out = append(out, p)
			}
		}

		for y := y0; y < y1; y++ {
			clear(scratch.Pix[y*scratch.Width+x0 : y*scratch.Width+x1])
		}

		res = append(res, &pathNode{p: head, children: buildTree(in, scratch)})
		paths = out
	}
	return res
}

// flattenTree lists the paths level by level.  Every outline is
// followed by its holes; the outlines inside these holes are queued
// for a later level.
func flattenTree(top []*pathNode) []*tracePath {
	var res []*tracePath
	queue := [][]*pathNode{top}
	for len(queue) > 0 {
		level := queue[0]
		queue = queue[1:]
		for _, n := range level {
			res = append(res, n.p)
			for _, c := range n.children {
				res = append(res, c.p)
				if len(c.children) > 0 {
					queue = append(queue, c.children)
				}
			}
		}
	}
	return res
}

// pathBBox returns the bounding box of the lattice points of p.
func pathBBox(p *tracePath) (x0, y0, x1, y1 int) {
	x0, y0 = p.pt[0].x, p.pt[0].y
	x1, y1 = x0, y0
	for _, q := range p.pt[1:] {
		x0, x1 = min(x0, q.x), max(x1, q.x)
		y0, y1 = min(y0, q.y), max(y1, q.y)
	}
	return x0, y0, x1, y1
}

// findNext locates the next set pixel, in row-major order from the top,
// starting at (x0, y0).
func findNext(bm *bitmap.Bitmap, x0, y0 int) (x, y int, ok bool) {
	w := bm.Width
	for y = y0; y >= 0; y-- {
		row := bm.Pix[y*w : (y+1)*w]
		for x = x0; x < w; x++ {
			if row[x] != 0 {
				return x, y, true
			}
		}
		x0 = 0
	}
	return 0, 0, false
}

// findPath walks the boundary of the region to the lower right of the
// lattice point (x0, y0), keeping set pixels on the left.
func findPath(bm *bitmap.Bitmap, x0, y0, sign int, policy TurnPolicy) *tracePath {
	x, y := x0, y0
	dirx, diry := 0, -1
	area := 0

	var pt []lattice
	for {
		pt = append(pt, lattice{x, y})

		x += dirx
		y += diry
		area += x * diry

		if x == x0 && y == y0 {
			break
		}

		c := bm.Get(x+(dirx+diry-1)/2, y+(diry-dirx-1)/2)
		d := bm.Get(x+(dirx-diry-1)/2, y+(diry+dirx-1)/2)
		switch {
		case c && !d: // ambiguous
			if turnRight(bm, x, y, sign, policy) {
				dirx, diry = diry, -dirx
			} else {
				dirx, diry = -diry, dirx
			}
		case c:
			dirx, diry = diry, -dirx
		case !d:
			dirx, diry = -diry, dirx
		}
	}

	return &tracePath{
		pt:   pt,
		area: area,
		sign: sign,
	}
}

func turnRight(bm *bitmap.Bitmap, x, y, sign int, policy TurnPolicy) bool {
	switch policy {
	case TurnRight:
		return true
	case TurnBlack:
		return sign > 0
	case TurnWhite:
		return sign < 0
	case TurnRandom:
		return detrand(x, y)
	case TurnMajority:
		return majority(bm, x, y)
	case TurnMinority:
		return !majority(bm, x, y)
	default:
		return false
	}
}

// majority reports whether set pixels are in the majority around the
// lattice point (x, y).  Squares of growing size are tried until one
// gives a strict majority.
func majority(bm *bitmap.Bitmap, x, y int) bool {
	vote := func(px, py int) int {
		if bm.Get(px, py) {
			return 1
		}
		return -1
	}
	for i := 2; i < 5; i++ {
		ct := 0
		for a := -i + 1; a <= i-1; a++ {
			ct += vote(x+a, y+i-1)
			ct += vote(x+i-1, y+a-1)
			ct += vote(x+a-1, y-i)
			ct += vote(x-i, y+a)
		}
		if ct > 0 {
			return true
		} else if ct < 0 {
			return false
		}
	}
	return false
}

// detrand returns a pseudo-random bit which depends only on (x, y).
func detrand(x, y int) bool {
	z := (0x04b3e375*uint32(x) ^ uint32(y)) * 0x05a8ef93
	return bits.OnesCount32(z)&1 == 1
}

// xorPath inverts all pixels enclosed by p.
func xorPath(bm *bitmap.Bitmap, p *tracePath) {
	if len(p.pt) == 0 {
		return
	}

	xa := p.pt[0].x
	y1 := p.pt[len(p.pt)-1].y
	for _, q := range p.pt {
		if q.y != y1 {
			xorToRef(bm, q.x, min(q.y, y1), xa)
			y1 = q.y
		}
	}
}

// xorToRef inverts the pixels of row y between x and xa.
func xorToRef(bm *bitmap.Bitmap, x, y, xa int) {
	lo, hi := min(x, xa), max(x, xa)
	row := bm.Pix[y*bm.Width:]
	for i := lo; i < hi; i++ {
		row[i] ^= 1
	}
}
