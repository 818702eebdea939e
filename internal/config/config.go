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


// Package config reads the service settings from the environment.
package config

import (
	"log"
	"os"
	"runtime"
	"strconv"
)

// Config holds the settings of the bot service.
type Config struct {
	Port      string
	PublicURL string

	TelegramToken string

	DatabaseURL   string
	EquationsFile string

	Workers            int
	DefaultWidth       int
	DefaultSensitivity float64
	MaxImageBytes      int64
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("ignoring invalid %s=%q", k, v)
		return def
	}
	return n
}

func getFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("ignoring invalid %s=%q", k, v)
		return def
	}
	return f
}

// Load reads the configuration from the environment.  It exits if
// TELEGRAM_BOT_TOKEN is not set.
func Load() *Config {
	port := getEnv("PORT", "8080")
	return &Config{
		Port:      port,
		PublicURL: getEnv("PUBLIC_URL", "http://localhost:"+port),

		TelegramToken: mustEnv("TELEGRAM_BOT_TOKEN"),

		DatabaseURL:   os.Getenv("DATABASE_URL"),
		EquationsFile: getEnv("EQUATIONS_FILE", "equations.json"),

		Workers:            getInt("WORKERS", runtime.NumCPU()),
		DefaultWidth:       getInt("DEFAULT_WIDTH", 500),
		DefaultSensitivity: getFloat("DEFAULT_SENSITIVITY", 0.33),
		MaxImageBytes:      int64(getInt("MAX_IMAGE_BYTES", 20<<20)),
	}
}
