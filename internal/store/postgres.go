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
	"encoding/json"
	"errors"
)

// Postgres keeps records in the table "equations".
type Postgres struct{ DB *sql.DB }

// NewPostgres returns a store using db.  Call [Postgres.EnsureSchema]
// before first use.
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{DB: db} }

// EnsureSchema creates the table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists equations (
  id         text primary key,
  color      text not null,
  latex      jsonb not null,
  updated_at timestamptz not null default now()
)`
	_, err := p.DB.ExecContext(ctx, q)
	return err
}

// Get returns the record stored under id, or [ErrNotFound].
func (p *Postgres) Get(ctx context.Context, id string) (*Record, error) {
	const q = `select color, latex from equations where id = $1`
	var (
		color string
		js    []byte
	)
	err := p.DB.QueryRowContext(ctx, q, id).Scan(&color, &js)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	rec := &Record{Color: color}
	if err := json.Unmarshal(js, &rec.Latex); err != nil {
		return nil, err
	}
	return rec, nil
}

// Put stores rec under id.  An existing record is replaced.
func (p *Postgres) Put(ctx context.Context, id string, rec *Record) error {
	latex := rec.Latex
	if latex == nil {
		latex = []string{}
	}
	js, err := json.Marshal(latex)
	if err != nil {
		return err
	}
	const q = `
insert into equations (id, color, latex, updated_at)
values ($1, $2, $3, now())
on conflict (id) do update
set color = excluded.color,
    latex = excluded.latex,
    updated_at = excluded.updated_at`
	_, err = p.DB.ExecContext(ctx, q, id, rec.Color, string(js))
	return err
}
