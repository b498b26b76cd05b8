// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// AtlasTextureKind tells a rasterizer what sort of atlas a sprite samples.
type AtlasTextureKind uint8

// Atlas kinds.
const (
	// AtlasMonochrome holds coverage masks (glyphs, icons tinted at draw time).
	AtlasMonochrome AtlasTextureKind = iota
	// AtlasPolychrome holds full-color images (emoji, raster images).
	AtlasPolychrome
	// AtlasPath holds rasterized path coverage.
	AtlasPath
)

// String returns a human-readable name for the atlas kind.
func (k AtlasTextureKind) String() string {
	switch k {
	case AtlasMonochrome:
		return "Monochrome"
	case AtlasPolychrome:
		return "Polychrome"
	case AtlasPath:
		return "Path"
	default:
		return "Unknown"
	}
}

// Format returns the texture format a rasterizer binds for atlases of this
// kind.
func (k AtlasTextureKind) Format() gputypes.TextureFormat {
	switch k {
	case AtlasMonochrome, AtlasPath:
		return gputypes.TextureFormatR8Unorm
	case AtlasPolychrome:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// AtlasTextureID identifies one texture inside the atlas system.
// Sprite batches never span two different IDs.
type AtlasTextureID struct {
	Index uint32
	Kind  AtlasTextureKind
}

// String returns a string representation of the texture id.
func (id AtlasTextureID) String() string {
	return fmt.Sprintf("%s#%d", id.Kind, id.Index)
}

// AtlasBounds is a rectangle in atlas texels.
type AtlasBounds struct {
	X, Y          int32
	Width, Height int32
}

// AtlasTile locates a sprite's image inside an atlas texture.
// The atlas allocator that produces tiles lives outside this package.
type AtlasTile struct {
	TextureID AtlasTextureID
	TileID    uint32
	Padding   uint32
	Bounds    AtlasBounds
}
