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
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Sink saves generated equations for a requester.
type Sink struct {
	Store Store
}

// Save stores the equations under id.  The color is normalized with
// [ParseColor]; the empty string selects black.
func (s *Sink) Save(ctx context.Context, id, color string, equations []string) error {
	c, err := ParseColor(color)
	if err != nil {
		return err
	}
	if equations == nil {
		equations = []string{}
	}
	if err := s.Store.Put(ctx, id, &Record{Color: c, Latex: equations}); err != nil {
		return fmt.Errorf("save equations for %s: %w", id, err)
	}
	return nil
}

// ParseColor converts an SVG color name or a hexadecimal color ("#f80",
// "#ff8800", "0xff8800") into the form "#rrggbb".
func ParseColor(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "#000000", nil
	}
	if c, ok := colornames.Map[s]; ok {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return "", fmt.Errorf("invalid color %q", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", fmt.Errorf("invalid color %q", s)
	}
	return "#" + hex, nil
}
