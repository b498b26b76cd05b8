// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "slices"

// HoverGroup links unrelated primitives so that hovering any member
// activates a shared treatment on all of them, e.g. highlighting a whole
// composite control when the pointer is over one part of it.
//
// Groups are small dense integers handed out by Scene.HoverGroup, starting
// at zero for each frame.
type HoverGroup uint32

// GroupHover registers a primitive as a member of Group. When Variant is
// non-nil it replaces the primitive once the group becomes active.
type GroupHover[P any] struct {
	Group   HoverGroup
	Variant *P
}

// InGroup returns a membership without a replacement payload: the
// primitive activates the group when hovered but is not itself restyled.
func InGroup[P any](g HoverGroup) GroupHover[P] {
	return GroupHover[P]{Group: g}
}

// WithGroupVariant returns a membership that swaps in variant when the
// group becomes active.
func WithGroupVariant[P any](g HoverGroup, variant P) GroupHover[P] {
	return GroupHover[P]{Group: g, Variant: &variant}
}

// GroupSet accumulates the hover groups activated during one hover walk.
// Adding is append-only; Groups sorts and deduplicates on demand so the
// walk itself stays allocation-free once the buffer has grown.
type GroupSet struct {
	groups     []HoverGroup
	normalized bool
}

// Add records g as active.
func (gs *GroupSet) Add(g HoverGroup) {
	gs.groups = append(gs.groups, g)
	gs.normalized = false
}

// Groups returns the distinct active groups in ascending order.
// The slice is owned by the set and valid until the next Add or Reset.
func (gs *GroupSet) Groups() []HoverGroup {
	if !gs.normalized {
		slices.Sort(gs.groups)
		gs.groups = slices.Compact(gs.groups)
		gs.normalized = true
	}
	return gs.groups
}

// Contains reports whether g has been added.
func (gs *GroupSet) Contains(g HoverGroup) bool {
	_, found := slices.BinarySearch(gs.Groups(), g)
	return found
}

// Len returns the number of distinct active groups.
func (gs *GroupSet) Len() int {
	return len(gs.Groups())
}

// Reset empties the set, keeping its buffer.
func (gs *GroupSet) Reset() {
	gs.groups = gs.groups[:0]
	gs.normalized = true
}
