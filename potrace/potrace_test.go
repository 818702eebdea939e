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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/vectorize/bitmap"
)

// shape returns a bitmap where the pixels whose centers satisfy inside
// are set.
func shape(w, h int, inside func(x, y float64) bool) *bitmap.Bitmap {
	bm := bitmap.New(w, h)
	for y := range h {
		for x := range w {
			if inside(float64(x)+0.5, float64(y)+0.5) {
				bm.Pix[y*w+x] = 1
			}
		}
	}
	return bm
}

func square(w, h, x0, y0, size int) *bitmap.Bitmap {
	return shape(w, h, func(x, y float64) bool {
		return x > float64(x0) && x < float64(x0+size) && y > float64(y0) && y < float64(y0+size)
	})
}

func disk(w, h int, cx, cy, r float64) *bitmap.Bitmap {
	return shape(w, h, func(x, y float64) bool {
		return math.Hypot(x-cx, y-cy) <= r
	})
}

func TestEmptyBitmap(t *testing.T) {
	for _, size := range []int{0, 1, 10} {
		p, err := Trace(bitmap.New(size, size), nil)
		if err != nil {
			t.Fatalf("%dx%d: unexpected error: %v", size, size, err)
		}
		if len(p.Curves) != 0 {
			t.Errorf("%dx%d: got %d curves, want 0", size, size, len(p.Curves))
		}
	}
}

func TestMalformedBitmap(t *testing.T) {
	cases := []*bitmap.Bitmap{
		nil,
		{Width: 3, Height: 3, Pix: make([]uint8, 8)},
		{Width: -2, Height: 2, Pix: nil},
	}
	for i, bm := range cases {
		_, err := Trace(bm, nil)
		var traceErr *TraceError
		if !errors.As(err, &traceErr) {
			t.Errorf("%d: expected *TraceError, got %v", i, err)
		}
	}
}

func TestInvalidParams(t *testing.T) {
	params := DefaultParams
	params.AlphaMax = -1
	_, err := Trace(square(10, 10, 2, 2, 5), &params)
	var traceErr *TraceError
	if !errors.As(err, &traceErr) {
		t.Errorf("expected *TraceError, got %v", err)
	}
}

func TestNormalization(t *testing.T) {
	ones := disk(30, 30, 15, 15, 9)
	large := ones.Clone()
	for i, v := range large.Pix {
		if v != 0 {
			large.Pix[i] = uint8(2 + i%254)
		}
	}
	orig := large.Clone()

	p1, err := Trace(ones, nil)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Trace(large, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(p1, p2); d != "" {
		t.Errorf("values >1 traced differently (-ones +large):\n%s", d)
	}
	if d := cmp.Diff(orig, large); d != "" {
		t.Errorf("input bitmap was modified:\n%s", d)
	}
}

func TestSquareHasCorners(t *testing.T) {
	p, err := Trace(square(30, 30, 5, 5, 20), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(p.Curves))
	}
	c := p.Curves[0]
	if c.Sign != 1 {
		t.Errorf("Sign = %d, want 1", c.Sign)
	}
	if c.Area != 400 {
		t.Errorf("Area = %d, want 400", c.Area)
	}
	corners, _ := p.Counts()
	if corners == 0 {
		t.Error("square traced without corners")
	}

	box := p.BBox()
	const eps = 0.5
	if math.Abs(box.LLx-5) > eps || math.Abs(box.LLy-5) > eps ||
		math.Abs(box.URx-25) > eps || math.Abs(box.URy-25) > eps {
		t.Errorf("unexpected bounding box %v", box)
	}
}

func TestDiskIsSmooth(t *testing.T) {
	p, err := Trace(disk(50, 50, 25, 25, 20), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(p.Curves))
	}
	corners, smooths := p.Counts()
	if corners != 0 {
		t.Errorf("disk traced with %d corners", corners)
	}
	if smooths == 0 {
		t.Error("disk traced without smooth segments")
	}
}

func TestHole(t *testing.T) {
	ring := shape(60, 60, func(x, y float64) bool {
		r := math.Hypot(x-30, y-30)
		return r <= 25 && r >= 12
	})
	p, err := Trace(ring, nil)
	if err != nil {
		t.Fatal(err)
	}
	var signs []int
	for _, c := range p.Curves {
		signs = append(signs, c.Sign)
	}
	if d := cmp.Diff([]int{1, -1}, signs); d != "" {
		t.Errorf("curve signs (-want +got):\n%s", d)
	}
}

// toggled returns a w×h bitmap where each rectangle {x0, y0, x1, y1}
// (inclusive pixel indices) inverts the pixels it covers.
func toggled(w, h int, rects ...[4]int) *bitmap.Bitmap {
	bm := bitmap.New(w, h)
	for _, r := range rects {
		for y := r[1]; y <= r[3]; y++ {
			for x := r[0]; x <= r[2]; x++ {
				bm.Pix[y*w+x] ^= 1
			}
		}
	}
	return bm
}

func TestTreeOrder(t *testing.T) {
	cases := []struct {
		name  string
		bm    *bitmap.Bitmap
		signs []int
		areas []int
	}{
		{
			// the block starts above the hole of the ring
			name: "hole_before_neighbour",
			bm: toggled(20, 20,
				[4]int{2, 2, 9, 17}, [4]int{4, 5, 7, 11}, // ring
				[4]int{12, 10, 16, 14}, // block
			),
			signs: []int{1, -1, 1},
			areas: []int{128, 28, 25},
		},
		{
			// two islands in a hole, the first with a hole of its own
			name: "nested",
			bm: toggled(30, 30,
				[4]int{1, 1, 28, 28}, [4]int{3, 3, 26, 26},
				[4]int{5, 5, 12, 24}, [4]int{7, 12, 10, 20},
				[4]int{15, 8, 22, 22},
			),
			signs: []int{1, -1, 1, -1, 1},
			areas: []int{784, 576, 160, 36, 120},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Trace(tc.bm, nil)
			if err != nil {
				t.Fatal(err)
			}
			var signs, areas []int
			for _, c := range p.Curves {
				signs = append(signs, c.Sign)
				areas = append(areas, c.Area)
			}
			if d := cmp.Diff(tc.signs, signs); d != "" {
				t.Errorf("curve signs (-want +got):\n%s", d)
			}
			if d := cmp.Diff(tc.areas, areas); d != "" {
				t.Errorf("curve areas (-want +got):\n%s", d)
			}
		})
	}
}

func TestTurdSize(t *testing.T) {
	single := bitmap.New(5, 5)
	single.Set(2, 2, true)
	block := square(6, 6, 2, 2, 2)

	cases := []struct {
		name     string
		bm       *bitmap.Bitmap
		turdSize int
		want     int
	}{
		{"single_default", single, 2, 0},
		{"single_zero", single, 0, 1},
		{"block_default", block, 2, 1},
		{"block_large", block, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := DefaultParams
			params.TurdSize = tc.turdSize
			p, err := Trace(tc.bm, &params)
			if err != nil {
				t.Fatal(err)
			}
			if len(p.Curves) != tc.want {
				t.Errorf("got %d curves, want %d", len(p.Curves), tc.want)
			}
		})
	}
}

func TestTurnPolicy(t *testing.T) {
	// two 2x2 blocks touching at a corner
	bm := bitmap.New(4, 4)
	for _, q := range [][2]int{{0, 2}, {1, 2}, {0, 3}, {1, 3}, {2, 0}, {3, 0}, {2, 1}, {3, 1}} {
		bm.Set(q[0], q[1], true)
	}

	cases := []struct {
		policy TurnPolicy
		want   int
	}{
		{TurnBlack, 1},
		{TurnRight, 1},
		{TurnWhite, 2},
		{TurnLeft, 2},
	}
	for _, tc := range cases {
		t.Run(tc.policy.String(), func(t *testing.T) {
			params := DefaultParams
			params.TurnPolicy = tc.policy
			p, err := Trace(bm, &params)
			if err != nil {
				t.Fatal(err)
			}
			if len(p.Curves) != tc.want {
				t.Errorf("got %d curves, want %d", len(p.Curves), tc.want)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	bm := shape(40, 30, func(x, y float64) bool {
		return math.Sin(x/3)*math.Cos(y/4) > 0.2
	})
	for _, policy := range []TurnPolicy{TurnMinority, TurnMajority, TurnRandom} {
		params := DefaultParams
		params.TurnPolicy = policy
		p1, err := Trace(bm, &params)
		if err != nil {
			t.Fatal(err)
		}
		p2, err := Trace(bm, &params)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(p1, p2); d != "" {
			t.Errorf("%s: results differ:\n%s", policy, d)
		}
	}
}

func TestCurvesAreChained(t *testing.T) {
	bm := shape(40, 40, func(x, y float64) bool {
		return math.Abs(x-20)+math.Abs(y-20) < 15 || math.Hypot(x-8, y-30) < 5
	})
	for _, opti := range []bool{false, true} {
		params := DefaultParams
		params.OptiCurve = opti
		p, err := Trace(bm, &params)
		if err != nil {
			t.Fatal(err)
		}
		if len(p.Curves) == 0 {
			t.Fatal("no curves")
		}
		for i, c := range p.Curves {
			if len(c.Segments) == 0 {
				t.Errorf("opticurve=%t: curve %d has no segments", opti, i)
				continue
			}
			if last := c.Segments[len(c.Segments)-1].End; last != c.Start {
				t.Errorf("opticurve=%t: curve %d starts at %v but ends at %v", opti, i, c.Start, last)
			}
		}
	}
}

func TestToPath(t *testing.T) {
	bm := shape(50, 30, func(x, y float64) bool {
		return (x > 3 && x < 20 && y > 3 && y < 25) || math.Hypot(x-35, y-15) < 10
	})
	p, err := Trace(bm, nil)
	if err != nil {
		t.Fatal(err)
	}
	corners, smooths := p.Counts()

	counts := map[path.Command]int{}
	for cmd := range p.ToPath().Iter() {
		counts[cmd]++
	}
	want := map[path.Command]int{
		path.CmdMoveTo: len(p.Curves),
		path.CmdLineTo: 2 * corners,
		path.CmdCubeTo: smooths,
		path.CmdClose:  len(p.Curves),
	}
	for cmd, n := range want {
		if counts[cmd] != n {
			t.Errorf("command %v: got %d, want %d", cmd, counts[cmd], n)
		}
	}
}

func TestMod(t *testing.T) {
	cases := []struct{ a, n, want int }{
		{0, 5, 0}, {4, 5, 4}, {5, 5, 0}, {12, 5, 2}, {-1, 5, 4}, {-5, 5, 0}, {-6, 5, 4},
	}
	for _, tc := range cases {
		if got := mod(tc.a, tc.n); got != tc.want {
			t.Errorf("mod(%d, %d) = %d, want %d", tc.a, tc.n, got, tc.want)
		}
	}
	fd := []struct{ a, n, want int }{
		{7, 2, 3}, {-7, 2, -4}, {-1, 3, -1}, {0, 3, 0}, {-3, 3, -1},
	}
	for _, tc := range fd {
		if got := floordiv(tc.a, tc.n); got != tc.want {
			t.Errorf("floordiv(%d, %d) = %d, want %d", tc.a, tc.n, got, tc.want)
		}
	}
}

func BenchmarkTrace(b *testing.B) {
	bm := shape(500, 500, func(x, y float64) bool {
		return math.Sin(x/17)*math.Cos(y/11) > 0.3
	})
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Trace(bm, nil); err != nil {
			b.Fatal(err)
		}
	}
}
