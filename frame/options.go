// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "github.com/gogpu/uiscene/scene"

// Option configures a Driver during creation.
type Option func(*options)

type options struct {
	scene *scene.Scene
}

// WithScene makes the driver paint into s, e.g. one created with a custom
// order index. Without it the driver takes a scene from scene.DefaultPool
// and returns it on Close.
func WithScene(s *scene.Scene) Option {
	return func(o *options) {
		if s != nil {
			o.scene = s
		}
	}
}
