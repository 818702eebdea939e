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


// Package worker runs CPU bound jobs on a bounded number of goroutines.
package worker

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool limits the number of jobs which run at the same time.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool returns a pool which runs at most n jobs at a time.
func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(n))}
}

// Future is the result of a submitted job.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Submit schedules fn on the pool.  The job waits for a free slot until
// ctx is cancelled; once started it runs to completion.
func Submit[T any](ctx context.Context, p *Pool, fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		if err := p.sem.Acquire(ctx, 1); err != nil {
			f.err = err
			return
		}
		defer p.sem.Release(1)
		f.val, f.err = fn()
	}()
	return f
}

// Wait blocks until the job has finished or ctx is cancelled.
// Cancellation only abandons the wait.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed when the job has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
