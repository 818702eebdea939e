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

// Package equation converts traced paths into parametric equations.
//
// Every equation has the form "(x(t),y(t))" with t ranging over [0, 1],
// as understood by graphing calculators like Desmos.  Polynomials are
// written as nested linear interpolations, for example a straight line
// from (1, 2) to (3, 4) becomes
//
//	((1-t)1.000000+t3.000000,(1-t)2.000000+t4.000000)
package equation

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vectorize/potrace"
)

// Precision is the number of digits after the decimal point used for
// all coordinates.
const Precision = 6

// Synthesize returns the equations for all segments of p, in the order
// in which the segments appear in the path.  A corner segment yields
// two line equations, a smooth segment yields one cubic equation.
func Synthesize(p *potrace.Path) []string {
	res := []string{}
	if p == nil {
		return res
	}
	for _, c := range p.Curves {
		start := c.Start
		for _, seg := range c.Segments {
			switch seg.Kind {
			case potrace.Corner:
				res = append(res, Corner(start, seg.C1), Corner(seg.C1, seg.End))
			case potrace.Smooth:
				res = append(res, Cubic(start, seg.C1, seg.C2, seg.End))
			}
			start = seg.End
		}
	}
	return res
}

// Corner returns the equation of the straight line from a to b.
func Corner(a, b vec.Vec2) string {
	var sb strings.Builder
	sb.WriteByte('(')
	writeLerp(&sb, num(a.X), num(b.X))
	sb.WriteByte(',')
	writeLerp(&sb, num(a.Y), num(b.Y))
	sb.WriteByte(')')
	return sb.String()
}

// Cubic returns the equation of the cubic Bézier curve with control
// points p0, p1, p2, p3.
func Cubic(p0, p1, p2, p3 vec.Vec2) string {
	var sb strings.Builder
	sb.WriteByte('(')
	writeCubic(&sb, num(p0.X), num(p1.X), num(p2.X), num(p3.X))
	sb.WriteByte(',')
	writeCubic(&sb, num(p0.Y), num(p1.Y), num(p2.Y), num(p3.Y))
	sb.WriteByte(')')
	return sb.String()
}

// writeCubic writes one coordinate of a cubic Bézier curve, using de
// Casteljau's construction.
func writeCubic(sb *strings.Builder, a, b, c, d string) {
	sb.WriteString("(1-t)(")
	writeQuad(sb, a, b, c)
	sb.WriteString(")+t(")
	writeQuad(sb, b, c, d)
	sb.WriteByte(')')
}

func writeQuad(sb *strings.Builder, a, b, c string) {
	sb.WriteString("(1-t)(")
	writeLerp(sb, a, b)
	sb.WriteString(")+t(")
	writeLerp(sb, b, c)
	sb.WriteByte(')')
}

func writeLerp(sb *strings.Builder, a, b string) {
	sb.WriteString("(1-t)")
	sb.WriteString(a)
	sb.WriteString("+t")
	sb.WriteString(b)
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', Precision, 64)
}
