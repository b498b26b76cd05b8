// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/uiscene/scene"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := preview.New(800, 600,
//	    preview.WithBackground(gputypes.ColorWhite),
//	    preview.WithAtlas(atlas))
type Option func(*options)

type options struct {
	background gputypes.Color
	atlas      AtlasSource
}

func defaultOptions() options {
	return options{
		background: gputypes.ColorTransparent,
	}
}

// WithBackground sets the color the target is cleared to.
func WithBackground(c gputypes.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithAtlas supplies sprite atlas images. Without one, sprites are drawn
// as boxes.
func WithAtlas(a AtlasSource) Option {
	return func(o *options) {
		o.atlas = a
	}
}

// ImageAtlas is an AtlasSource backed by a map.
type ImageAtlas map[scene.AtlasTextureID]image.Image

// AtlasImage implements AtlasSource.
func (a ImageAtlas) AtlasImage(id scene.AtlasTextureID) (image.Image, bool) {
	img, ok := a[id]
	return img, ok
}
