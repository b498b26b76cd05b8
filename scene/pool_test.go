// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"sync"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/uiscene"
)

func TestPool(t *testing.T) {
	pool := NewPool()

	s := pool.Get()
	if s == nil {
		t.Fatal("Get() returned nil")
	}
	if s.Len() != 0 {
		t.Error("Get() should return an empty scene")
	}

	s.HoverGroup("menu")
	s.InsertQuad(quadAt(0, 0, 10, 10, gputypes.ColorRed), nil)
	s.Finish(uiscene.Pt(5, 5))
	pool.Put(s)

	s2 := pool.Get()
	if s2.Len() != 0 || s2.Finished() {
		t.Error("Get() after Put() should return a cleared scene")
	}
	if o, _ := s2.InsertQuad(quadAt(0, 0, 10, 10, gputypes.ColorRed), nil); o != 1 {
		t.Errorf("first order from pooled scene = %d, want 1", o)
	}
}

func TestPoolNilPut(t *testing.T) {
	pool := NewPool()

	// Should not panic
	pool.Put(nil)
}

func TestPoolConcurrent(t *testing.T) {
	pool := NewPool()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 50 {
				s := pool.Get()
				if s.Len() != 0 {
					t.Error("pooled scene not empty")
				}
				s.InsertQuad(quadAt(uiscene.ScaledPixels(i), 0, 10, 10, gputypes.ColorRed), nil)
				s.FinishUnhovered()
				pool.Put(s)
			}
		}(i)
	}
	wg.Wait()
}
