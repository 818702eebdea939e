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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Counts returns the number of corner and smooth segments in p.
func (p *Path) Counts() (corners, smooths int) {
	for _, c := range p.Curves {
		for _, s := range c.Segments {
			switch s.Kind {
			case Corner:
				corners++
			case Smooth:
				smooths++
			}
		}
	}
	return corners, smooths
}

// ToPath converts p into a geom path.  Every curve becomes a closed
// subpath, corners become pairs of line segments.
func (p *Path) ToPath() *path.Data {
	res := &path.Data{}
	for _, c := range p.Curves {
		if len(c.Segments) == 0 {
			continue
		}
		res = res.MoveTo(c.Start)
		for _, s := range c.Segments {
			switch s.Kind {
			case Corner:
				res = res.LineTo(s.C1).LineTo(s.End)
			default:
				res = res.CubeTo(s.C1, s.C2, s.End)
			}
		}
		res = res.Close()
	}
	return res
}

// BBox returns the smallest rectangle containing all control points
// of p.  The zero rectangle is returned for an empty path.
func (p *Path) BBox() rect.Rect {
	box := rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, c := range p.Curves {
		for _, s := range c.Segments {
			pts := [...]struct{ x, y float64 }{
				{s.C1.X, s.C1.Y},
				{s.End.X, s.End.Y},
				{s.C2.X, s.C2.Y},
			}
			n := 3
			if s.Kind == Corner {
				n = 2
			}
			for _, q := range pts[:n] {
				box.LLx = min(box.LLx, q.x)
				box.LLy = min(box.LLy, q.y)
				box.URx = max(box.URx, q.x)
				box.URy = max(box.URy, q.y)
			}
		}
	}
	if box.LLx > box.URx {
		return rect.Rect{}
	}
	return box
}
