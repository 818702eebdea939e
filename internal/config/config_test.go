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


package config

import (
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "PUBLIC_URL", "DATABASE_URL", "EQUATIONS_FILE",
		"WORKERS", "DEFAULT_WIDTH", "DEFAULT_SENSITIVITY", "MAX_IMAGE_BYTES"} {
		t.Setenv(k, "")
	}
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	got := Load()
	want := &Config{
		Port:               "8080",
		PublicURL:          "http://localhost:8080",
		TelegramToken:      "123:abc",
		EquationsFile:      "equations.json",
		Workers:            runtime.NumCPU(),
		DefaultWidth:       500,
		DefaultSensitivity: 0.33,
		MaxImageBytes:      20 << 20,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "t")
	t.Setenv("PORT", "9000")
	t.Setenv("PUBLIC_URL", "https://eq.example.org")
	t.Setenv("DATABASE_URL", "postgres://u@h/db")
	t.Setenv("EQUATIONS_FILE", "")
	t.Setenv("WORKERS", "3")
	t.Setenv("DEFAULT_WIDTH", "oops")
	t.Setenv("DEFAULT_SENSITIVITY", "0.5")
	t.Setenv("MAX_IMAGE_BYTES", "-1")

	got := Load()
	want := &Config{
		Port:               "9000",
		PublicURL:          "https://eq.example.org",
		TelegramToken:      "t",
		DatabaseURL:        "postgres://u@h/db",
		EquationsFile:      "equations.json",
		Workers:            3,
		DefaultWidth:       500,
		DefaultSensitivity: 0.5,
		MaxImageBytes:      20 << 20,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}
}
