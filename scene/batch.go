// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"iter"
)

// Batch is a run of primitives of one kind that are contiguous in paint
// order. Sprite batches additionally share one atlas texture.
//
// Exactly one slice field, the one matching Kind, is set. Slices alias the
// scene's buffers and are valid until the scene is cleared.
type Batch struct {
	Kind PrimitiveKind
	// TextureID is the atlas texture shared by a sprite batch; zero for
	// other kinds.
	TextureID AtlasTextureID

	Shadows           []Shadow
	Quads             []Quad
	Paths             []Path
	Underlines        []Underline
	MonochromeSprites []MonochromeSprite
	PolychromeSprites []PolychromeSprite
	Surfaces          []Surface
}

// Len returns the number of primitives in the batch.
func (b Batch) Len() int {
	switch b.Kind {
	case KindShadow:
		return len(b.Shadows)
	case KindQuad:
		return len(b.Quads)
	case KindPath:
		return len(b.Paths)
	case KindUnderline:
		return len(b.Underlines)
	case KindMonochromeSprite:
		return len(b.MonochromeSprites)
	case KindPolychromeSprite:
		return len(b.PolychromeSprites)
	case KindSurface:
		return len(b.Surfaces)
	}
	return 0
}

// String returns a short description such as "Quads[3]" or
// "MonochromeSprites[12] Monochrome#0".
func (b Batch) String() string {
	if b.Kind.IsSprite() {
		return fmt.Sprintf("%s[%d] %s", b.Kind, b.Len(), b.TextureID)
	}
	return fmt.Sprintf("%s[%d]", b.Kind, b.Len())
}

// BatchIterator walks a finished scene as a sequence of batches in paint
// order. It keeps one cursor per kind and merges the sorted stores,
// extending each batch for as long as the next primitive in global order
// has the same kind (and, for sprites, the same texture).
//
// Example usage:
//
//	var it scene.BatchIterator
//	it.Reset(s)
//	for it.Next() {
//	    b := it.Batch()
//	    switch b.Kind {
//	    case scene.KindQuad:
//	        drawQuads(b.Quads)
//	    case scene.KindMonochromeSprite:
//	        drawGlyphs(b.TextureID, b.MonochromeSprites)
//	    }
//	}
//
// A BatchIterator holds no allocations of its own and can be reused across
// frames with Reset.
type BatchIterator struct {
	scene  *Scene
	cursor [kindCount]int
	batch  Batch
}

// NewBatchIterator creates an iterator over s. s should be finished.
func NewBatchIterator(s *Scene) *BatchIterator {
	it := &BatchIterator{}
	it.Reset(s)
	return it
}

// Reset rewinds the iterator to the first batch of s.
func (it *BatchIterator) Reset(s *Scene) {
	it.scene = s
	it.cursor = [kindCount]int{}
	it.batch = Batch{}
}

// Next advances to the next batch and reports whether there is one.
func (it *BatchIterator) Next() bool {
	it.batch = Batch{}
	if it.scene == nil {
		return false
	}

	first := -1
	var firstOrder uint32
	for k := range kindCount {
		o, ok := it.peek(PrimitiveKind(k))
		if ok && (first < 0 || o < firstOrder) {
			first, firstOrder = k, o
		}
	}
	if first < 0 {
		return false
	}
	kind := PrimitiveKind(first)

	// The batch may run up to, but not including, the next primitive of
	// any other kind.
	bounded := false
	var boundOrder uint32
	var boundKind PrimitiveKind
	for k := range kindCount {
		if k == first {
			continue
		}
		o, ok := it.peek(PrimitiveKind(k))
		if ok && (!bounded || keyLess(o, PrimitiveKind(k), boundOrder, boundKind)) {
			bounded, boundOrder, boundKind = true, o, PrimitiveKind(k)
		}
	}

	start := it.cursor[first]
	n := it.scene.KindLen(kind)
	var tex AtlasTextureID
	if kind.IsSprite() {
		tex = it.textureAt(kind, start)
	}

	end := start + 1
	for end < n {
		if bounded && !keyLess(it.orderAt(kind, end), kind, boundOrder, boundKind) {
			break
		}
		if kind.IsSprite() && it.textureAt(kind, end) != tex {
			break
		}
		end++
	}
	it.cursor[first] = end
	it.batch = it.slice(kind, tex, start, end)
	return true
}

// Batch returns the current batch.
// Call this after Next returns true.
func (it *BatchIterator) Batch() Batch {
	return it.batch
}

func (it *BatchIterator) peek(k PrimitiveKind) (uint32, bool) {
	i := it.cursor[k]
	if i >= it.scene.KindLen(k) {
		return 0, false
	}
	return it.orderAt(k, i), true
}

func (it *BatchIterator) orderAt(k PrimitiveKind, i int) uint32 {
	s := it.scene
	switch k {
	case KindShadow:
		return s.shadows.primitives[i].Order
	case KindQuad:
		return s.quads.primitives[i].Order
	case KindPath:
		return s.paths.primitives[i].Order
	case KindUnderline:
		return s.underlines.primitives[i].Order
	case KindMonochromeSprite:
		return s.monochromeSprites.primitives[i].Order
	case KindPolychromeSprite:
		return s.polychromeSprites.primitives[i].Order
	case KindSurface:
		return s.surfaces.primitives[i].Order
	}
	return 0
}

func (it *BatchIterator) textureAt(k PrimitiveKind, i int) AtlasTextureID {
	switch k {
	case KindMonochromeSprite:
		return it.scene.monochromeSprites.primitives[i].Tile.TextureID
	case KindPolychromeSprite:
		return it.scene.polychromeSprites.primitives[i].Tile.TextureID
	}
	return AtlasTextureID{}
}

func (it *BatchIterator) slice(k PrimitiveKind, tex AtlasTextureID, start, end int) Batch {
	s := it.scene
	b := Batch{Kind: k}
	switch k {
	case KindShadow:
		b.Shadows = s.shadows.primitives[start:end]
	case KindQuad:
		b.Quads = s.quads.primitives[start:end]
	case KindPath:
		b.Paths = s.paths.primitives[start:end]
	case KindUnderline:
		b.Underlines = s.underlines.primitives[start:end]
	case KindMonochromeSprite:
		b.TextureID = tex
		b.MonochromeSprites = s.monochromeSprites.primitives[start:end]
	case KindPolychromeSprite:
		b.TextureID = tex
		b.PolychromeSprites = s.polychromeSprites.primitives[start:end]
	case KindSurface:
		b.Surfaces = s.surfaces.primitives[start:end]
	}
	return b
}

// keyLess orders merge candidates by order, then by kind.
func keyLess(o1 uint32, k1 PrimitiveKind, o2 uint32, k2 PrimitiveKind) bool {
	return o1 < o2 || (o1 == o2 && k1 < k2)
}

// Batches returns the scene's batches in paint order. Call it after Finish.
//
//	for b := range s.Batches() {
//	    renderer.Draw(b)
//	}
func (s *Scene) Batches() iter.Seq[Batch] {
	return func(yield func(Batch) bool) {
		var it BatchIterator
		it.Reset(s)
		for it.Next() {
			if !yield(it.Batch()) {
				return
			}
		}
	}
}
