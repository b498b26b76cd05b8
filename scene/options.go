// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// Option configures a Scene during creation.
//
// Example:
//
//	// Default grid index
//	s := scene.New()
//
//	// Pre-sized stores and a custom index
//	s := scene.New(scene.WithCapacity(4096), scene.WithOrderIndex(myIndex))
type Option func(*options)

type options struct {
	index    OrderIndex
	capacity int
}

// WithOrderIndex replaces the default grid index. The scene takes
// ownership and clears the index together with itself.
func WithOrderIndex(idx OrderIndex) Option {
	return func(o *options) {
		o.index = idx
	}
}

// WithCapacity pre-sizes every primitive store for n primitives, which
// avoids buffer growth during the first frames.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
