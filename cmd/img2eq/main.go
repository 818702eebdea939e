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


// Command img2eq converts an image file into parametric curve equations.
//
// Usage:
//
//	img2eq [flags] input
//
// The input is a file name or an http(s) URL.  The equations are written
// to standard output, one per line.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"seehuhn.de/go/vectorize"
	"seehuhn.de/go/vectorize/edges"
	"seehuhn.de/go/vectorize/internal/imagesrc"
	"seehuhn.de/go/vectorize/potrace"
	"seehuhn.de/go/vectorize/preview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("img2eq: ")

	params := potrace.DefaultParams
	sensitivity := flag.Float64("s", edges.DefaultSensitivity, "edge detection sensitivity")
	width := flag.Int("w", 0, "scale the image to this width before tracing, 0 keeps the size")
	flag.IntVar(&params.TurdSize, "turdsize", params.TurdSize, "suppress regions up to this area")
	flag.Float64Var(&params.AlphaMax, "alphamax", params.AlphaMax, "corner threshold")
	flag.BoolVar(&params.OptiCurve, "opticurve", params.OptiCurve, "merge adjacent curve segments")
	flag.Float64Var(&params.OptTolerance, "opttolerance", params.OptTolerance, "curve optimization tolerance")
	turn := flag.String("turnpolicy", params.TurnPolicy.String(), "turn policy: black, white, left, right, minority, majority or random")
	out := flag.String("o", "", "write the equations to this file instead of standard output")
	pngOut := flag.String("png", "", "write a preview image to this file")
	pdfOut := flag.String("pdf", "", "write the traced curves to this PDF file")
	edgesOut := flag.String("edges", "", "write the edge bitmap to this PNG file")
	lineWidth := flag.Float64("lw", 1, "line width for -png and -pdf, 0 to fill")
	shapes := flag.Bool("shapes", false, "trace the dark regions of the image instead of its edges")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: img2eq [flags] input")
		flag.PrintDefaults()
		os.Exit(2)
	}
	tp, err := parseTurnPolicy(*turn)
	if err != nil {
		log.Fatal(err)
	}
	params.TurnPolicy = tp

	img, err := load(flag.Arg(0), *width)
	if err != nil {
		log.Fatal(err)
	}

	var res *vectorize.Result
	if *shapes {
		res, err = vectorize.RunShapes(img, &params)
	} else {
		res, err = vectorize.RunWithParams(img, *sensitivity, &params)
	}
	if err != nil {
		log.Fatal(err)
	}
	corners, smooths := res.Path.Counts()
	log.Printf("%d curves, %d corners, %d smooth segments, %d equations",
		len(res.Path.Curves), corners, smooths, len(res.Equations))
	if len(res.Path.Curves) > 0 {
		box := res.Path.BBox()
		log.Printf("curves span [%.1f, %.1f] x [%.1f, %.1f]", box.LLx, box.URx, box.LLy, box.URy)
	}

	if err := writeEquations(*out, res.Equations); err != nil {
		log.Fatal(err)
	}
	w, h := res.Edges.Width, res.Edges.Height
	if *pngOut != "" {
		if err := writePNG(*pngOut, preview.Render(res.Path, w, h, *lineWidth)); err != nil {
			log.Fatal(err)
		}
	}
	if *pdfOut != "" {
		if err := preview.WritePDF(*pdfOut, res.Path, w, h, *lineWidth); err != nil {
			log.Fatal(err)
		}
	}
	if *edgesOut != "" {
		if err := writePNG(*edgesOut, res.Edges.Image()); err != nil {
			log.Fatal(err)
		}
	}
}

func load(name string, width int) (image.Image, error) {
	var data []byte
	var err error
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		data, err = imagesrc.Fetch(context.Background(), nil, name, 0)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	img, _, err := imagesrc.Decode(data)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		return imagesrc.Resize(img, width)
	}
	return img, nil
}

func writeEquations(fname string, eqs []string) error {
	if fname == "" {
		return writeLines(os.Stdout, eqs)
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = writeLines(f, eqs)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// writeLines writes one equation per line.
func writeLines(w io.Writer, eqs []string) error {
	bw := bufio.NewWriter(w)
	for _, eq := range eqs {
		bw.WriteString(eq)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func parseTurnPolicy(s string) (potrace.TurnPolicy, error) {
	for p := potrace.TurnBlack; p <= potrace.TurnRandom; p++ {
		if p.String() == strings.ToLower(s) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown turn policy %q", s)
}
