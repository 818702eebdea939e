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
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps all records in a single JSON file, which maps
// identifiers to records.  The file is rewritten on every Put.
type FileStore struct {
	Path string

	mu sync.Mutex
}

// NewFileStore returns a store backed by the JSON file at path.  The
// file is created by the first Put.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Get returns the record stored under id, or [ErrNotFound].
func (f *FileStore) Get(_ context.Context, id string) (*Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return nil, err
	}
	rec, ok := data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Put stores rec under id and rewrites the file.
func (f *FileStore) Put(_ context.Context, id string, rec *Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	data[id] = rec

	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), ".equations-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}

// load reads the whole file.  A missing or empty file is an empty store.
func (f *FileStore) load() (map[string]*Record, error) {
	data := make(map[string]*Record)
	body, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return data, nil
	} else if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return data, nil
}
