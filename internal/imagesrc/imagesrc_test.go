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


package imagesrc

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/vectorize/edges"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(4 * x), G: uint8(4 * y), B: 128, A: 255})
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	img := testImage(16, 8)
	encoders := []struct {
		format string
		encode func(io.Writer, image.Image) error
	}{
		{"png", png.Encode},
		{"jpeg", func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }},
		{"gif", func(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) }},
		{"bmp", bmp.Encode},
		{"tiff", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
	}
	for _, e := range encoders {
		t.Run(e.format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := e.encode(buf, img); err != nil {
				t.Fatal(err)
			}
			got, format, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatal(err)
			}
			if format != e.format {
				t.Errorf("format %q, want %q", format, e.format)
			}
			if got.Bounds() != img.Bounds() {
				t.Errorf("bounds %v, want %v", got.Bounds(), img.Bounds())
			}
		})
	}

	if _, _, err := Decode([]byte("not an image")); err == nil {
		t.Error("garbage decoded without error")
	}
}

func TestResize(t *testing.T) {
	cases := []struct {
		w, h, width int
		wantH       int
	}{
		{100, 50, 500, 250},
		{640, 480, 500, 375},
		{3, 2, 2, 1},     // 4/3 rounds to 1
		{1000, 1, 10, 1}, // at least one row
		{7, 3, 14, 6},
	}
	for _, c := range cases {
		got, err := Resize(testImage(c.w, c.h), c.width)
		if err != nil {
			t.Fatal(err)
		}
		if b := got.Bounds(); b.Dx() != c.width || b.Dy() != c.wantH {
			t.Errorf("%dx%d to width %d: got %v, want height %d", c.w, c.h, c.width, b, c.wantH)
		}
	}

	if _, err := Resize(testImage(4, 4), 0); err == nil {
		t.Error("zero width accepted")
	}
	_, err := Resize(image.NewGray(image.Rect(0, 0, 0, 4)), 10)
	var imgErr *edges.InvalidImageError
	if !errors.As(err, &imgErr) {
		t.Errorf("empty image: got %v, want InvalidImageError", err)
	} else if imgErr.Width != 0 || imgErr.Height != 4 {
		t.Errorf("empty image: got %dx%d, want 0x4", imgErr.Width, imgErr.Height)
	}
}

func TestResizeUniform(t *testing.T) {
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	img := image.NewNRGBA(image.Rect(3, 3, 23, 13))
	for y := 3; y < 13; y++ {
		for x := 3; x < 23; x++ {
			img.SetNRGBA(x, y, want)
		}
	}
	got, err := Resize(img, 7)
	if err != nil {
		t.Fatal(err)
	}
	near := func(a, b uint8) bool { return a-b <= 1 || b-a <= 1 }
	for y := range got.Bounds().Dy() {
		for x := range 7 {
			c := got.NRGBAAt(x, y)
			if !near(c.R, want.R) || !near(c.G, want.G) || !near(c.B, want.B) || !near(c.A, want.A) {
				t.Fatalf("pixel (%d,%d) is %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestFetch(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, testImage(20, 10)); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	mux := http.NewServeMux()
	mux.HandleFunc("/img.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	})
	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		// no Content-Length
		w.(http.Flusher).Flush()
		w.Write(make([]byte, 2048))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()

	got, err := Fetch(ctx, srv.Client(), srv.URL+"/img.png", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Error("downloaded data differs")
	}

	if _, err := Fetch(ctx, srv.Client(), srv.URL+"/img.png", int64(len(data)-1)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("got %v, want ErrTooLarge", err)
	}
	if _, err := Fetch(ctx, srv.Client(), srv.URL+"/stream", 1024); !errors.Is(err, ErrTooLarge) {
		t.Errorf("streamed body: got %v, want ErrTooLarge", err)
	}
	if _, err := Fetch(ctx, srv.Client(), srv.URL+"/missing", 0); err == nil {
		t.Error("404 accepted")
	}

	img, err := Load(ctx, srv.Client(), srv.URL+"/img.png", 40, 0)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("loaded image is %v, want 40x20", b)
	}
}

func TestFetchErrorsOmitURL(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	const token = "123456:secret-token"
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []struct {
		name string
		ctx  context.Context
		addr string
	}{
		{"status", context.Background(), srv.URL + "/file/bot" + token + "/a.png"},
		{"refused", context.Background(), "http://127.0.0.1:1/file/bot" + token + "/a.png"},
		{"canceled", canceled, srv.URL + "/file/bot" + token + "/a.png"},
		{"malformed", context.Background(), "http://[::1/file/bot" + token},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Fetch(c.ctx, srv.Client(), c.addr, 0)
			if err == nil {
				t.Fatal("no error")
			}
			if strings.Contains(err.Error(), token) {
				t.Errorf("error %q contains the URL", err)
			}
		})
	}

	_, err := Fetch(canceled, srv.Client(), srv.URL+"/a.png", 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
