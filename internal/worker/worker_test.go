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


package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmit(t *testing.T) {
	p := NewPool(2)
	ctx := context.Background()

	f := Submit(ctx, p, func() (int, error) { return 42, nil })
	v, err := f.Wait(ctx)
	if err != nil || v != 42 {
		t.Errorf("got %d, %v; want 42, nil", v, err)
	}

	fail := errors.New("boom")
	g := Submit(ctx, p, func() (string, error) { return "", fail })
	if _, err := g.Wait(ctx); !errors.Is(err, fail) {
		t.Errorf("got %v, want %v", err, fail)
	}
}

func TestLimit(t *testing.T) {
	const n = 3
	p := NewPool(n)
	ctx := context.Background()

	var running, peak atomic.Int32
	futures := make([]*Future[struct{}], 20)
	for i := range futures {
		futures[i] = Submit(ctx, p, func() (struct{}, error) {
			cur := running.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			running.Add(-1)
			return struct{}{}, nil
		})
	}
	for _, f := range futures {
		if _, err := f.Wait(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if got := peak.Load(); got > n {
		t.Errorf("%d jobs ran concurrently, limit is %d", got, n)
	}
}

func TestCancelWait(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	var finished atomic.Bool
	f := Submit(context.Background(), p, func() (int, error) {
		<-release
		finished.Store(true)
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}

	// the job keeps running after the wait was abandoned
	close(release)
	<-f.Done()
	if !finished.Load() {
		t.Error("job did not complete")
	}
	if v, err := f.Wait(context.Background()); v != 1 || err != nil {
		t.Errorf("got %d, %v; want 1, nil", v, err)
	}
}

func TestCancelQueued(t *testing.T) {
	p := NewPool(1)
	block := make(chan struct{})
	first := Submit(context.Background(), p, func() (int, error) {
		<-block
		return 0, nil
	})

	// wait until the first job holds the only slot
	for p.sem.TryAcquire(1) {
		p.sem.Release(1)
		time.Sleep(time.Millisecond)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	second := Submit(ctx, p, func() (int, error) {
		ran.Store(true)
		return 0, nil
	})
	cancel()
	<-second.Done()
	if _, err := second.Wait(context.Background()); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if ran.Load() {
		t.Error("cancelled job was started")
	}

	close(block)
	if _, err := first.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
}
