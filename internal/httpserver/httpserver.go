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


// Package httpserver serves stored equations to graphing pages.
package httpserver

import (
	_ "embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"

	"seehuhn.de/go/vectorize/internal/store"
)

//go:embed render.html
var pageSource string

var page = template.Must(template.New("render").Parse(pageSource))

// WritePage writes an HTML page which loads the record at dataURL into
// a graphing calculator.
func WritePage(w io.Writer, dataURL string) error {
	return page.Execute(w, struct {
		Title   string
		DataURL string
	}{
		Title:   "equations",
		DataURL: dataURL,
	})
}

// Server exposes the records of a store over HTTP:
//
//	GET /{id}         the record as JSON
//	GET /render/{id}  a page which draws the record
//	GET /healthz      liveness probe
type Server struct {
	Store store.Store

	// PublicURL is the externally visible base URL of the server.  If
	// empty, pages refer to the records by relative URLs.
	PublicURL string
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("equation server"))
	})
	mux.HandleFunc("GET /render/{id}", s.handleRender)
	mux.HandleFunc("GET /{id}", s.handleRecord)
	return cors(mux)
}

// DataURL returns the URL of the record for id.
func (s *Server) DataURL(id string) string {
	return strings.TrimSuffix(s.PublicURL, "/") + "/" + id
}

// PageURL returns the URL of the rendering page for id.
func (s *Server) PageURL(id string) string {
	return strings.TrimSuffix(s.PublicURL, "/") + "/render/" + id
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rec, err := s.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Printf("get %s: %v", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.Store.Get(r.Context(), id); errors.Is(err, store.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := WritePage(w, s.DataURL(id)); err != nil {
		log.Printf("render %s: %v", id, err)
	}
}

// cors allows every origin to read the responses.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "*")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
