// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/uiscene"
)

// primitive is the capability surface every stored kind provides to the
// generic store and insertion code.
type primitive[P any] interface {
	// clippedBounds returns the bounds intersected with the content mask.
	clippedBounds() uiscene.Bounds
	primitiveOrder() uint32
	// withOrder returns a copy carrying the given order.
	withOrder(order uint32) P
}

// Shadow is a blurred, rounded rectangle drawn beneath an element.
type Shadow struct {
	Order       uint32
	BlurRadius  uiscene.ScaledPixels
	Bounds      uiscene.Bounds
	CornerRadii uiscene.Corners
	ContentMask uiscene.ContentMask
	Color       gputypes.Color
}

func (s Shadow) clippedBounds() uiscene.Bounds { return s.Bounds.Intersect(s.ContentMask.Bounds) }
func (s Shadow) primitiveOrder() uint32        { return s.Order }
func (s Shadow) withOrder(order uint32) Shadow { s.Order = order; return s }

// Quad is a filled, optionally bordered and rounded rectangle.
type Quad struct {
	Order        uint32
	Bounds       uiscene.Bounds
	ContentMask  uiscene.ContentMask
	Background   gputypes.Color
	BorderColor  gputypes.Color
	CornerRadii  uiscene.Corners
	BorderWidths uiscene.Edges
}

func (q Quad) clippedBounds() uiscene.Bounds { return q.Bounds.Intersect(q.ContentMask.Bounds) }
func (q Quad) primitiveOrder() uint32        { return q.Order }
func (q Quad) withOrder(order uint32) Quad   { q.Order = order; return q }

// Underline is a straight or wavy text decoration.
type Underline struct {
	Order       uint32
	Bounds      uiscene.Bounds
	ContentMask uiscene.ContentMask
	Color       gputypes.Color
	Thickness   uiscene.ScaledPixels
	Wavy        bool
}

func (u Underline) clippedBounds() uiscene.Bounds    { return u.Bounds.Intersect(u.ContentMask.Bounds) }
func (u Underline) primitiveOrder() uint32           { return u.Order }
func (u Underline) withOrder(order uint32) Underline { u.Order = order; return u }

// MonochromeSprite is a coverage mask from a monochrome atlas, tinted with
// a single color. Glyphs are the common case.
type MonochromeSprite struct {
	Order       uint32
	Bounds      uiscene.Bounds
	ContentMask uiscene.ContentMask
	Color       gputypes.Color
	Tile        AtlasTile
}

func (s MonochromeSprite) clippedBounds() uiscene.Bounds { return s.Bounds.Intersect(s.ContentMask.Bounds) }
func (s MonochromeSprite) primitiveOrder() uint32        { return s.Order }
func (s MonochromeSprite) withOrder(order uint32) MonochromeSprite {
	s.Order = order
	return s
}

// PolychromeSprite is a full-color image from a polychrome atlas.
type PolychromeSprite struct {
	Order       uint32
	Bounds      uiscene.Bounds
	ContentMask uiscene.ContentMask
	CornerRadii uiscene.Corners
	Tile        AtlasTile
	Grayscale   bool
	Opacity     float32
}

func (s PolychromeSprite) clippedBounds() uiscene.Bounds { return s.Bounds.Intersect(s.ContentMask.Bounds) }
func (s PolychromeSprite) primitiveOrder() uint32        { return s.Order }
func (s PolychromeSprite) withOrder(order uint32) PolychromeSprite {
	s.Order = order
	return s
}

// Surface is platform-composited content (video frames, embedded GPU
// views) drawn from a texture owned by the host.
type Surface struct {
	Order       uint32
	Bounds      uiscene.Bounds
	ContentMask uiscene.ContentMask
	Texture     gpucontext.Texture
}

func (s Surface) clippedBounds() uiscene.Bounds  { return s.Bounds.Intersect(s.ContentMask.Bounds) }
func (s Surface) primitiveOrder() uint32         { return s.Order }
func (s Surface) withOrder(order uint32) Surface { s.Order = order; return s }
