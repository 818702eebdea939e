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


package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/vectorize/potrace"
)

func TestParseTurnPolicy(t *testing.T) {
	for _, s := range []string{"black", "white", "left", "right", "minority", "majority", "random"} {
		p, err := parseTurnPolicy(s)
		if err != nil {
			t.Fatal(err)
		}
		if p.String() != s {
			t.Errorf("%s parsed as %s", s, p)
		}
	}
	if p, err := parseTurnPolicy("Minority"); err != nil || p != potrace.TurnMinority {
		t.Errorf("got %v, %v", p, err)
	}
	if _, err := parseTurnPolicy("sideways"); err == nil {
		t.Error("unknown policy accepted")
	}
}

func TestLoad(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 30, 10))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	src.SetGray(5, 5, color.Gray{})

	fname := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := load(fname, 0)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != src.Bounds() {
		t.Errorf("bounds %v, want %v", img.Bounds(), src.Bounds())
	}

	img, err = load(fname, 60)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 20 {
		t.Errorf("resized to %v, want 60x20", b)
	}

	if _, err := load(filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Error("missing file loaded")
	}
}

func TestWriteEquations(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "eq.txt")
	eqs := []string{"(a,b)", "(c,d)"}
	if err := writeEquations(fname, eqs); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), strings.Join(eqs, "\n")+"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteEquationsFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	if err := writeEquations("/dev/full", []string{"(a,b)"}); err == nil {
		t.Error("write to a full device succeeded")
	}
	if err := writeEquations(filepath.Join(t.TempDir(), "no", "eq.txt"), nil); err == nil {
		t.Error("write to a missing directory succeeded")
	}
}
