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

package equation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vectorize/potrace"
)

func TestCorner(t *testing.T) {
	cases := []struct {
		a, b vec.Vec2
		want string
	}{
		{vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 3, Y: 4},
			"((1-t)1.000000+t3.000000,(1-t)2.000000+t4.000000)"},
		{vec.Vec2{X: -1.5, Y: 2}, vec.Vec2{X: 0.25, Y: -3},
			"((1-t)-1.500000+t0.250000,(1-t)2.000000+t-3.000000)"},
		{vec.Vec2{X: 1.0 / 3}, vec.Vec2{X: 1234.5678901},
			"((1-t)0.333333+t1234.567890,(1-t)0.000000+t0.000000)"},
	}
	for _, tc := range cases {
		if got := Corner(tc.a, tc.b); got != tc.want {
			t.Errorf("Corner(%v, %v) = %q, want %q", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCubic(t *testing.T) {
	got := Cubic(vec.Vec2{X: 0, Y: 5}, vec.Vec2{X: 1, Y: 5}, vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 3, Y: 5})
	want := "(" +
		"(1-t)((1-t)((1-t)0.000000+t1.000000)+t((1-t)1.000000+t2.000000))" +
		"+t((1-t)((1-t)1.000000+t2.000000)+t((1-t)2.000000+t3.000000))" +
		"," +
		"(1-t)((1-t)((1-t)5.000000+t5.000000)+t((1-t)5.000000+t5.000000))" +
		"+t((1-t)((1-t)5.000000+t5.000000)+t((1-t)5.000000+t5.000000))" +
		")"
	if got != want {
		t.Errorf("Cubic:\ngot  %s\nwant %s", got, want)
	}
}

func TestSynthesize(t *testing.T) {
	p := &potrace.Path{
		Curves: []potrace.Curve{
			{
				Start: vec.Vec2{X: 0, Y: 0},
				Segments: []potrace.Segment{
					{Kind: potrace.Corner, C1: vec.Vec2{X: 2, Y: 0}, End: vec.Vec2{X: 2, Y: 2}},
					{Kind: potrace.Smooth, C1: vec.Vec2{X: 1, Y: 3}, C2: vec.Vec2{X: 0, Y: 1}, End: vec.Vec2{X: 0, Y: 0}},
				},
				Sign: 1,
			},
			{
				Start: vec.Vec2{X: 5, Y: 5},
				Segments: []potrace.Segment{
					{Kind: potrace.Corner, C1: vec.Vec2{X: 6, Y: 5}, End: vec.Vec2{X: 5, Y: 5}},
				},
				Sign: -1,
			},
		},
	}
	want := []string{
		Corner(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 2, Y: 0}),
		Corner(vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 2, Y: 2}),
		Cubic(vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 1, Y: 3}, vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 0, Y: 0}),
		Corner(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 6, Y: 5}),
		Corner(vec.Vec2{X: 6, Y: 5}, vec.Vec2{X: 5, Y: 5}),
	}
	got := Synthesize(p)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected equations (-want +got):\n%s", d)
	}

	corners, smooths := p.Counts()
	if len(got) != 2*corners+smooths {
		t.Errorf("got %d equations for %d corners and %d smooth segments",
			len(got), corners, smooths)
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	for _, p := range []*potrace.Path{nil, {}, {Curves: []potrace.Curve{{}}}} {
		got := Synthesize(p)
		if got == nil || len(got) != 0 {
			t.Errorf("Synthesize(%v) = %#v, want empty slice", p, got)
		}
	}
}
