// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/gogpu/uiscene"
)

// Scene collects the primitives painted during one frame, resolves pointer
// hover against them and hands them to a rasterizer as ordered batches.
//
// A frame runs Insert* calls in paint order, then Finish once with the
// pointer position, then drains Batches. Clear resets the scene for the
// next frame while keeping every buffer's capacity.
//
// Example:
//
//	s := scene.New()
//	s.InsertQuad(background, nil)
//	s.InsertQuad(button, &buttonHovered)
//	s.Finish(pointer)
//	for b := range s.Batches() {
//		draw(b)
//	}
//	s.Clear()
//
// Hover groups are interned by name with HoverGroup. The empty name is
// reserved for anonymous groups: HoverGroup("") behaves like NewHoverGroup
// and never returns a group issued before.
//
// A zero Scene is ready to use with the default grid index.
// Scene is not safe for concurrent use.
type Scene struct {
	shadows           PrimitiveSet[Shadow]
	quads             PrimitiveSet[Quad]
	paths             PrimitiveSet[Path]
	underlines        PrimitiveSet[Underline]
	monochromeSprites PrimitiveSet[MonochromeSprite]
	polychromeSprites PrimitiveSet[PolychromeSprite]
	surfaces          PrimitiveSet[Surface]

	// index assigns orders and answers hit tests
	index OrderIndex

	// hits is reused by Finish across frames
	hits []Hit

	// active collects groups activated by the hover walk
	active GroupSet

	groupNames map[string]HoverGroup
	nextGroup  HoverGroup

	stats    Stats
	finished bool
}

// Stats describes the current frame.
type Stats struct {
	// Inserted counts primitives that received an order.
	Inserted int
	// Rejected counts primitives dropped because their clipped bounds
	// were empty.
	Rejected int
	// Hits is the number of primitives under the pointer at Finish.
	Hits int
	// Hovered is how many hits the hover walk visited before it stopped
	// at an occluding primitive or ran out.
	Hovered int
	// ActiveGroups is the number of distinct hover groups activated.
	ActiveGroups int
}

// New creates an empty scene.
func New(opts ...Option) *Scene {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{index: o.index}
	if o.capacity > 0 {
		s.shadows.grow(o.capacity)
		s.quads.grow(o.capacity)
		s.paths.grow(o.capacity)
		s.underlines.grow(o.capacity)
		s.monochromeSprites.grow(o.capacity)
		s.polychromeSprites.grow(o.capacity)
		s.surfaces.grow(o.capacity)
	}
	return s
}

func (s *Scene) orderIndex() OrderIndex {
	if s.index == nil {
		s.index = newDefaultIndex()
	}
	return s.index
}

// HoverGroup returns the group registered under name, creating it on first
// use. Every call with the same name returns the same group until Clear.
// The empty name is never interned: each HoverGroup("") call allocates a
// fresh anonymous group, as NewHoverGroup does.
func (s *Scene) HoverGroup(name string) HoverGroup {
	if name == "" {
		return s.NewHoverGroup()
	}
	if g, ok := s.groupNames[name]; ok {
		return g
	}
	if s.groupNames == nil {
		s.groupNames = make(map[string]HoverGroup)
	}
	g := s.NewHoverGroup()
	s.groupNames[name] = g
	return g
}

// NewHoverGroup allocates an anonymous group that no other call returns.
func (s *Scene) NewHoverGroup() HoverGroup {
	g := s.nextGroup
	s.nextGroup++
	return g
}

// insertPrimitive clips p, assigns its order and stores it. Primitives
// clipped to nothing are dropped without taking an order.
func insertPrimitive[P primitive[P]](s *Scene, set *PrimitiveSet[P], kind PrimitiveKind,
	p P, occludesHover bool, hover *P, groups []GroupHover[P]) (uint32, bool) {
	clipped := p.clippedBounds()
	if clipped.IsEmpty() {
		s.stats.Rejected++
		return 0, false
	}

	order := s.orderIndex().Insert(clipped, PrimitiveIndex{Kind: kind, Index: set.Len()})
	set.Insert(p.withOrder(order), occludesHover, hover, groups...)
	s.stats.Inserted++
	s.finished = false
	return order, true
}

// InsertShadow adds a shadow and returns its order. The boolean is false
// when the shadow was clipped away; nothing is stored in that case.
//
// A non-nil hover replaces the shadow while it is under the pointer and
// stops the hover walk from reaching anything beneath it. Each group
// membership makes the shadow activate that group when hovered and, with a
// variant, be replaced when the group is active.
func (s *Scene) InsertShadow(p Shadow, hover *Shadow, groups ...GroupHover[Shadow]) (uint32, bool) {
	return insertPrimitive(s, &s.shadows, KindShadow, p, hover != nil, hover, groups)
}

// InsertQuad adds a quad. See InsertShadow for the hover contract.
func (s *Scene) InsertQuad(p Quad, hover *Quad, groups ...GroupHover[Quad]) (uint32, bool) {
	return insertPrimitive(s, &s.quads, KindQuad, p, hover != nil, hover, groups)
}

// InsertPath adds a path. See InsertShadow for the hover contract.
func (s *Scene) InsertPath(p Path, hover *Path, groups ...GroupHover[Path]) (uint32, bool) {
	return insertPrimitive(s, &s.paths, KindPath, p, hover != nil, hover, groups)
}

// InsertUnderline adds an underline. See InsertShadow for the hover
// contract.
func (s *Scene) InsertUnderline(p Underline, hover *Underline, groups ...GroupHover[Underline]) (uint32, bool) {
	return insertPrimitive(s, &s.underlines, KindUnderline, p, hover != nil, hover, groups)
}

// InsertMonochromeSprite adds a monochrome sprite. See InsertShadow for
// the hover contract.
func (s *Scene) InsertMonochromeSprite(p MonochromeSprite, hover *MonochromeSprite,
	groups ...GroupHover[MonochromeSprite]) (uint32, bool) {
	return insertPrimitive(s, &s.monochromeSprites, KindMonochromeSprite, p, hover != nil, hover, groups)
}

// InsertPolychromeSprite adds a polychrome sprite. See InsertShadow for
// the hover contract.
func (s *Scene) InsertPolychromeSprite(p PolychromeSprite, hover *PolychromeSprite,
	groups ...GroupHover[PolychromeSprite]) (uint32, bool) {
	return insertPrimitive(s, &s.polychromeSprites, KindPolychromeSprite, p, hover != nil, hover, groups)
}

// InsertSurface adds a surface. Unlike the other kinds, whether a surface
// blocks hover beneath it is stated explicitly by occludesHover and is
// independent of the hover variant.
func (s *Scene) InsertSurface(p Surface, occludesHover bool, hover *Surface,
	groups ...GroupHover[Surface]) (uint32, bool) {
	return insertPrimitive(s, &s.surfaces, KindSurface, p, occludesHover, hover, groups)
}

// Finish resolves hover for the pointer at p and sorts every store by
// order. After Finish the scene is read-only until Clear; calling Finish
// again without new insertions does nothing.
//
// Hits are visited topmost first. Each hovered primitive takes its hover
// variant and activates its groups; the walk stops at the first primitive
// that occludes hover. Group variants are then applied scene-wide, so
// primitives that were not under the pointer still change when one of
// their groups is active.
func (s *Scene) Finish(p uiscene.Point) {
	if s.finished {
		return
	}

	s.hits = s.orderIndex().FindContaining(p, s.hits[:0])
	slices.SortFunc(s.hits, func(a, b Hit) int {
		return cmp.Compare(b.Order, a.Order)
	})

	s.active.Reset()
	hovered := 0
	for _, h := range s.hits {
		hovered++
		if s.hover(h.Data) {
			break
		}
	}
	s.stats.Hits = len(s.hits)
	s.stats.Hovered = hovered

	s.applyGroupVariants()
	s.finish()

	if log := uiscene.Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("scene: finished",
			"x", p.X, "y", p.Y,
			"primitives", s.Len(),
			"hits", s.stats.Hits,
			"hovered", s.stats.Hovered,
			"groups", s.stats.ActiveGroups)
	}
}

// FinishUnhovered finalizes the scene without a pointer, as when the
// pointer is outside the window. No hover or group variant is applied.
func (s *Scene) FinishUnhovered() {
	if s.finished {
		return
	}
	s.active.Reset()
	s.stats.Hits = 0
	s.stats.Hovered = 0
	s.stats.ActiveGroups = 0
	s.finish()
}

func (s *Scene) hover(idx PrimitiveIndex) bool {
	switch idx.Kind {
	case KindShadow:
		return s.shadows.Hover(idx.Index, &s.active)
	case KindQuad:
		return s.quads.Hover(idx.Index, &s.active)
	case KindPath:
		return s.paths.Hover(idx.Index, &s.active)
	case KindUnderline:
		return s.underlines.Hover(idx.Index, &s.active)
	case KindMonochromeSprite:
		return s.monochromeSprites.Hover(idx.Index, &s.active)
	case KindPolychromeSprite:
		return s.polychromeSprites.Hover(idx.Index, &s.active)
	case KindSurface:
		return s.surfaces.Hover(idx.Index, &s.active)
	}
	return false
}

func (s *Scene) applyGroupVariants() {
	active := s.active.Groups()
	s.stats.ActiveGroups = len(active)
	if len(active) == 0 {
		return
	}
	s.shadows.ApplyGroupVariants(active)
	s.quads.ApplyGroupVariants(active)
	s.paths.ApplyGroupVariants(active)
	s.underlines.ApplyGroupVariants(active)
	s.monochromeSprites.ApplyGroupVariants(active)
	s.polychromeSprites.ApplyGroupVariants(active)
	s.surfaces.ApplyGroupVariants(active)
}

func (s *Scene) finish() {
	s.shadows.sortByOrder()
	s.quads.sortByOrder()
	s.paths.sortByOrder()
	s.underlines.sortByOrder()
	s.monochromeSprites.sortByOrder()
	s.polychromeSprites.sortByOrder()
	s.surfaces.sortByOrder()
	s.finished = true
}

// Finished reports whether Finish or FinishUnhovered has run since the
// last insertion.
func (s *Scene) Finished() bool {
	return s.finished
}

// Clear empties the scene for the next frame. Orders restart, hover groups
// are forgotten and every PrimitiveIndex handed out becomes invalid.
func (s *Scene) Clear() {
	s.shadows.Clear()
	s.quads.Clear()
	s.paths.Clear()
	s.underlines.Clear()
	s.monochromeSprites.Clear()
	s.polychromeSprites.Clear()
	s.surfaces.Clear()

	if s.index != nil {
		s.index.Clear()
	}
	s.hits = s.hits[:0]
	s.active.Reset()
	clear(s.groupNames)
	s.nextGroup = 0
	s.stats = Stats{}
	s.finished = false
}

// Stats returns counters for the current frame.
func (s *Scene) Stats() Stats {
	return s.stats
}

// Len returns the number of stored primitives of all kinds.
func (s *Scene) Len() int {
	n := 0
	for k := range kindCount {
		n += s.KindLen(PrimitiveKind(k))
	}
	return n
}

// KindLen returns the number of stored primitives of kind k.
func (s *Scene) KindLen(k PrimitiveKind) int {
	switch k {
	case KindShadow:
		return s.shadows.Len()
	case KindQuad:
		return s.quads.Len()
	case KindPath:
		return s.paths.Len()
	case KindUnderline:
		return s.underlines.Len()
	case KindMonochromeSprite:
		return s.monochromeSprites.Len()
	case KindPolychromeSprite:
		return s.polychromeSprites.Len()
	case KindSurface:
		return s.surfaces.Len()
	}
	return 0
}

// Shadows returns the stored shadows. After Finish they are in ascending
// order. The slice must not be modified.
func (s *Scene) Shadows() []Shadow { return s.shadows.Primitives() }

// Quads returns the stored quads.
func (s *Scene) Quads() []Quad { return s.quads.Primitives() }

// Paths returns the stored paths. Rasterizers that cache path coverage in
// an atlas walk this before drawing batches.
func (s *Scene) Paths() []Path { return s.paths.Primitives() }

// Underlines returns the stored underlines.
func (s *Scene) Underlines() []Underline { return s.underlines.Primitives() }

// MonochromeSprites returns the stored monochrome sprites.
func (s *Scene) MonochromeSprites() []MonochromeSprite { return s.monochromeSprites.Primitives() }

// PolychromeSprites returns the stored polychrome sprites.
func (s *Scene) PolychromeSprites() []PolychromeSprite { return s.polychromeSprites.Primitives() }

// Surfaces returns the stored surfaces.
func (s *Scene) Surfaces() []Surface { return s.surfaces.Primitives() }
