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


// Package imagesrc downloads, decodes and scales input images.
package imagesrc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/vectorize/edges"
)

// ErrTooLarge is returned by [Fetch] if the response body exceeds the
// size limit.
var ErrTooLarge = errors.New("image too large")

// DefaultTimeout is used by [Fetch] when the client has no timeout.
const DefaultTimeout = 60 * time.Second

// Fetch downloads the data at addr.  At most maxBytes bytes are read;
// maxBytes <= 0 means no limit.  If client is nil, a client with
// [DefaultTimeout] is used.
//
// The returned errors do not contain addr, since file URLs of the
// Telegram API include the bot token.
func Fetch(ctx context.Context, client *http.Client, addr string, maxBytes int64) ([]byte, error) {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, StripURL(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, StripURL(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: status %d", resp.StatusCode)
	}
	if maxBytes > 0 && resp.ContentLength > maxBytes {
		return nil, ErrTooLarge
	}

	var body io.Reader = resp.Body
	if maxBytes > 0 {
		body = io.LimitReader(resp.Body, maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, StripURL(err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// StripURL removes the request URL from errors of the net/http client.
// Other errors are returned unchanged.
func StripURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}

// Decode decodes a PNG, JPEG, GIF, WebP, BMP or TIFF image.
// The second return value is the format name.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Resize scales img to the given width, keeping the aspect ratio.
// The new height is round(width*h/w), but at least 1.
func Resize(img image.Image, width int) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &edges.InvalidImageError{Width: b.Dx(), Height: b.Dy()}
	}
	if width <= 0 {
		return nil, fmt.Errorf("invalid width %d", width)
	}
	height := max(1, int(math.Round(float64(width)*float64(b.Dy())/float64(b.Dx()))))

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// Load fetches, decodes and resizes the image at addr.
// If width is 0, the image keeps its size.
func Load(ctx context.Context, client *http.Client, addr string, width int, maxBytes int64) (image.Image, error) {
	data, err := Fetch(ctx, client, addr, maxBytes)
	if err != nil {
		return nil, err
	}
	img, _, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if width == 0 {
		return img, nil
	}
	return Resize(img, width)
}
