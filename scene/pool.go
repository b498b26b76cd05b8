// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "sync"

// Pool manages reusable scenes for hosts that open and close windows.
// A scene returned to the pool keeps its grown buffers, so a new window
// starts with steady-state capacity instead of regrowing from empty.
//
// Usage:
//
//	s := scene.DefaultPool.Get()
//	defer scene.DefaultPool.Put(s)
//	// paint into s ...
//
// Only scenes using the default order index should be pooled.
type Pool struct {
	pool sync.Pool
}

// NewPool creates a new scene pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return New()
			},
		},
	}
}

// Get retrieves a cleared scene from the pool.
func (p *Pool) Get() *Scene {
	s := p.pool.Get().(*Scene)
	s.Clear()
	return s
}

// Put returns a scene to the pool. The caller must not use s afterwards.
func (p *Pool) Put(s *Scene) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}

// DefaultPool is a process-wide scene pool.
var DefaultPool = NewPool()
