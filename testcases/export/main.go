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

// Command export runs all test cases through the pipeline and writes the
// input images, together with a JSON summary of the traced curves and
// the resulting equations, to testdata/.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/vectorize"
	"seehuhn.de/go/vectorize/edges"
	"seehuhn.de/go/vectorize/potrace"
	"seehuhn.de/go/vectorize/testcases"
)

const inputDir = "testdata/input"

func main() {
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, err := export(name, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string      `json:"name"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	EdgePix   int         `json:"edge_pixels"`
	Curves    []jsonCurve `json:"curves"`
	Equations []string    `json:"equations"`
}

type jsonCurve struct {
	Sign     int           `json:"sign"`
	Area     int           `json:"area"`
	Start    []float64     `json:"start"`
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	Kind string      `json:"kind"`
	Pts  [][]float64 `json:"pts"`
}

func export(name string, tc testcases.TestCase) (jsonTestCase, error) {
	img := tc.Image()

	f, err := os.Create(filepath.Join(inputDir, name+".png"))
	if err != nil {
		return jsonTestCase{}, err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return jsonTestCase{}, err
	}

	res, err := vectorize.Run(img, edges.DefaultSensitivity)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:      name,
		Width:     tc.Width,
		Height:    tc.Height,
		EdgePix:   res.Edges.Count(),
		Curves:    make([]jsonCurve, len(res.Path.Curves)),
		Equations: res.Equations,
	}
	for i, c := range res.Path.Curves {
		jc := jsonCurve{
			Sign:  c.Sign,
			Area:  c.Area,
			Start: []float64{c.Start.X, c.Start.Y},
		}
		for _, seg := range c.Segments {
			js := jsonSegment{Kind: seg.Kind.String()}
			if seg.Kind == potrace.Corner {
				js.Pts = [][]float64{{seg.C1.X, seg.C1.Y}, {seg.End.X, seg.End.Y}}
			} else {
				js.Pts = [][]float64{{seg.C1.X, seg.C1.Y}, {seg.C2.X, seg.C2.Y}, {seg.End.X, seg.End.Y}}
			}
			jc.Segments = append(jc.Segments, js)
		}
		jtc.Curves[i] = jc
	}
	return jtc, nil
}
