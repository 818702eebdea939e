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

// Command genpdf generates preview files for all test cases.
// For every case the traced curves are written to a PDF file and to a
// PNG file drawn by the preview rasterizer.  If Ghostscript is available,
// the PDF files are also rendered to PNG, for comparison with the
// rasterizer output.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/vectorize"
	"seehuhn.de/go/vectorize/edges"
	"seehuhn.de/go/vectorize/preview"
	"seehuhn.de/go/vectorize/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/preview", "output directory")
	lineWidth := flag.Float64("w", 1, "line width, 0 to fill the traced regions")
	useGS := flag.Bool("gs", false, "render the PDF files with Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(*outDir, name), *lineWidth, *useGS); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, base string, lineWidth float64, useGS bool) error {
	res, err := vectorize.Run(tc.Image(), edges.DefaultSensitivity)
	if err != nil {
		return err
	}

	pdfPath := base + ".pdf"
	if err := preview.WritePDF(pdfPath, res.Path, tc.Width, tc.Height, lineWidth); err != nil {
		return err
	}

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	err = png.Encode(f, preview.Render(res.Path, tc.Width, tc.Height, lineWidth))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if useGS {
		return renderPNG(pdfPath, base+"-gs.png")
	}
	return nil
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
