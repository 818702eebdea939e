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


// Package store keeps the generated equations of each requester, so that
// the retrieval endpoint can serve them to a graphing page.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by [Store.Get] for unknown identifiers.
var ErrNotFound = errors.New("store: record not found")

// Record is the stored result for one requester.
type Record struct {
	Color string   `json:"color"` // "#rrggbb"
	Latex []string `json:"latex"`
}

// Store is a key-value store for records.  A later Put for the same
// identifier replaces the earlier record.
type Store interface {
	Get(ctx context.Context, id string) (*Record, error)
	Put(ctx context.Context, id string, rec *Record) error
}

// MemStore keeps records in memory.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]*Record
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]*Record)}
}

// Get returns a copy of the record stored under id, or [ErrNotFound].
func (m *MemStore) Get(_ context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.clone(), nil
}

// Put stores a copy of rec under id.
func (m *MemStore) Put(_ context.Context, id string, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = rec.clone()
	return nil
}

func (r *Record) clone() *Record {
	res := &Record{Color: r.Color, Latex: make([]string, len(r.Latex))}
	copy(res.Latex, r.Latex)
	return res
}
