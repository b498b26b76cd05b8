// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene holds the primitives painted during one UI frame and turns
// them into ordered draw batches.
//
// Every insertion is clipped to its content mask and given a paint order by
// a bounds-indexed order index shared across all kinds. Primitives are kept
// in one store per kind, so a rasterizer receives homogeneous runs:
//   - insertion assigns a strictly increasing order, across kinds
//   - Finish resolves hover topmost first and sorts each store
//   - Batches merges the stores back into global paint order
//
// Hover behavior is sparse: only primitives registered with a hover variant
// or a hover group carry extra state.
package scene

// PrimitiveKind identifies one of the closed set of primitive types a scene
// stores. The numeric value doubles as the batch merger's tie-break: when
// two kinds would start a batch at the same order, the lower kind wins.
type PrimitiveKind uint8

// Primitive kinds in tie-break order.
const (
	KindShadow PrimitiveKind = iota
	KindQuad
	KindPath
	KindUnderline
	KindMonochromeSprite
	KindPolychromeSprite
	KindSurface
)

// kindCount is the number of primitive kinds.
const kindCount = int(KindSurface) + 1

// String returns a human-readable name for the kind.
func (k PrimitiveKind) String() string {
	switch k {
	case KindShadow:
		return "Shadows"
	case KindQuad:
		return "Quads"
	case KindPath:
		return "Paths"
	case KindUnderline:
		return "Underlines"
	case KindMonochromeSprite:
		return "MonochromeSprites"
	case KindPolychromeSprite:
		return "PolychromeSprites"
	case KindSurface:
		return "Surfaces"
	default:
		return "Unknown"
	}
}

// IsSprite reports whether primitives of this kind sample a texture atlas
// and therefore split batches on texture changes.
func (k PrimitiveKind) IsSprite() bool {
	return k == KindMonochromeSprite || k == KindPolychromeSprite
}

// PrimitiveIndex addresses one primitive inside a scene: its kind and its
// position in that kind's store. It is only meaningful for the frame that
// produced it and is invalidated by Scene.Clear.
type PrimitiveIndex struct {
	Kind  PrimitiveKind
	Index int
}
