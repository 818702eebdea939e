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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/vectorize/potrace"
)

// WritePDF writes the curves of p to a single-page PDF file.  One PDF
// unit corresponds to one pixel, so the page is width×height points.
// The meaning of lineWidth is the same as for [Render].
func WritePDF(filename string, p *potrace.Path, width, height int, lineWidth float64) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if p != nil && len(p.Curves) > 0 {
		// PDF and traced paths both have the y-axis pointing up
		page.SetFillColor(color.DeviceGray(0))
		page.SetStrokeColor(color.DeviceGray(0))
		if lineWidth > 0 {
			page.SetLineWidth(lineWidth)
			page.SetLineCap(graphics.LineCapRound)
			page.SetLineJoin(graphics.LineJoinRound)
		}

		for cmd, pts := range p.ToPath().Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}

		if lineWidth > 0 {
			page.Stroke()
		} else {
			page.FillEvenOdd()
		}
	}

	return page.Close()
}
