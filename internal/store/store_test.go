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


package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get of unknown id: got %v, want ErrNotFound", err)
	}

	a := &Record{Color: "#000000", Latex: []string{"((1-t)0.000000+t1.000000,(1-t)0.000000+t1.000000)"}}
	b := &Record{Color: "#ff0000", Latex: []string{}}
	if err := s.Put(ctx, "1", a); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "2", b); err != nil {
		t.Fatal(err)
	}
	for id, want := range map[string]*Record{"1": a, "2": b} {
		got, err := s.Get(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("record %s (-want +got):\n%s", id, d)
		}
	}

	// replace
	if err := s.Put(ctx, "1", b); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(b, got); d != "" {
		t.Errorf("replaced record (-want +got):\n%s", d)
	}
}

func TestMemStore(t *testing.T) {
	testStore(t, NewMemStore())
}

func TestMemStoreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	rec := &Record{Color: "#000000", Latex: []string{"a"}}
	if err := s.Put(ctx, "x", rec); err != nil {
		t.Fatal(err)
	}
	rec.Latex[0] = "b"
	got, _ := s.Get(ctx, "x")
	if got.Latex[0] != "a" {
		t.Error("stored record shares memory with the caller")
	}
}

func TestFileStore(t *testing.T) {
	testStore(t, NewFileStore(filepath.Join(t.TempDir(), "equations.json")))
}

func TestFileStoreFormat(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "equations.json")
	s := NewFileStore(fname)
	err := s.Put(context.Background(), "42", &Record{Color: "#00ff00", Latex: []string{"eq"}})
	if err != nil {
		t.Fatal(err)
	}
	body, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "42": {
    "color": "#00ff00",
    "latex": [
      "eq"
    ]
  }
}`
	if d := cmp.Diff(want, string(body)); d != "" {
		t.Errorf("file contents (-want +got):\n%s", d)
	}
}

func TestFileStoreEmptyFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "equations.json")
	if err := os.WriteFile(fname, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	testStore(t, NewFileStore(fname))
}

func TestFileStoreCorrupt(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "equations.json")
	if err := os.WriteFile(fname, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(fname)
	_, err := s.Get(context.Background(), "1")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected a decoding error, got %v", err)
	}
}

func TestFileStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "equations.json"))
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Put(ctx, id, &Record{Color: "#000000", Latex: []string{id}}); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	for _, id := range ids {
		rec, err := s.Get(ctx, id)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if rec.Latex[0] != id {
			t.Errorf("%s: got %q", id, rec.Latex[0])
		}
	}
}

// TestPostgres needs a scratch database given by TEST_DATABASE_URL.
func TestPostgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	p := NewPostgres(db)
	if err := p.EnsureSchema(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := db.ExecContext(ctx, `delete from equations where id in ('1', '2', 'nobody')`); err != nil {
		t.Fatal(err)
	}
	testStore(t, p)
}

func TestSink(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	sink := &Sink{Store: s}

	if err := sink.Save(ctx, "7", "Red", nil); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, "7")
	if err != nil {
		t.Fatal(err)
	}
	want := &Record{Color: "#ff0000", Latex: []string{}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("saved record (-want +got):\n%s", d)
	}

	if err := sink.Save(ctx, "8", "not-a-color", []string{"x"}); err == nil {
		t.Error("invalid color accepted")
	}
	if _, err := s.Get(ctx, "8"); !errors.Is(err, ErrNotFound) {
		t.Error("record stored despite invalid color")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "#000000"},
		{"black", "#000000"},
		{"Blue", "#0000ff"},
		{"orange", "#ffa500"},
		{"#FF8800", "#ff8800"},
		{"0x123abc", "#123abc"},
		{"abcdef", "#abcdef"},
		{"#f80", "#ff8800"},
		{"  white ", "#ffffff"},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %s, want %s", c.in, got, c.want)
		}
	}

	for _, in := range []string{"#12345", "#gggggg", "notacolor", "#ff00ff00", strings.Repeat("f", 7)} {
		if got, err := ParseColor(in); err == nil {
			t.Errorf("%q: got %s, want error", in, got)
		}
	}
}
