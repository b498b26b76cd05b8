// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"cmp"
	"slices"
)

// hoverMetadata is the sparse per-primitive hover state. Only primitives
// registered with hover behavior have an entry.
type hoverMetadata[P any] struct {
	hover         P
	hasHover      bool
	occludesHover bool
}

// groupMembership records that the primitive at index belongs to group.
type groupMembership struct {
	index int
	group HoverGroup
}

// groupVariant is a payload to substitute at index when group activates.
type groupVariant[P any] struct {
	group   HoverGroup
	index   int
	variant P
	pending bool
}

// PrimitiveSet is an append-only buffer of one primitive kind plus its
// hover side tables. A Scene owns one set per kind.
//
// Indices are positions in the buffer at insertion time. They stay valid
// for Hover and ApplyGroupVariants until the set is sorted by order, which
// Scene does as the last step of Finish.
type PrimitiveSet[P primitive[P]] struct {
	primitives []P

	// metadata maps a primitive index to its slot in mdSlots. Map values
	// stay small so reinserting after Clear reuses the map's storage.
	metadata map[int]int32
	mdSlots  []hoverMetadata[P]

	// membership is ordered by index because Insert only ever appends.
	membership []groupMembership

	variants       []groupVariant[P]
	variantsSorted bool
}

// Len returns the number of stored primitives.
func (s *PrimitiveSet[P]) Len() int {
	return len(s.primitives)
}

// Primitives returns the stored primitives. The slice is owned by the set
// and is valid until the next Insert or Clear.
func (s *PrimitiveSet[P]) Primitives() []P {
	return s.primitives
}

// Insert appends p and returns its index.
//
// Metadata is recorded when occludesHover is set or hover is non-nil. The
// hover variant and every group variant take p's order, so substitution
// changes payload but never depth.
func (s *PrimitiveSet[P]) Insert(p P, occludesHover bool, hover *P, groups ...GroupHover[P]) int {
	index := len(s.primitives)
	s.primitives = append(s.primitives, p)
	order := p.primitiveOrder()

	if occludesHover || hover != nil {
		md := hoverMetadata[P]{occludesHover: occludesHover}
		if hover != nil {
			md.hover = (*hover).withOrder(order)
			md.hasHover = true
		}
		if s.metadata == nil {
			s.metadata = make(map[int]int32)
		}
		s.metadata[index] = int32(len(s.mdSlots))
		s.mdSlots = append(s.mdSlots, md)
	}

	for _, g := range groups {
		s.membership = append(s.membership, groupMembership{index: index, group: g.Group})
		if g.Variant != nil {
			s.variants = append(s.variants, groupVariant[P]{
				group:   g.Group,
				index:   index,
				variant: (*g.Variant).withOrder(order),
				pending: true,
			})
			s.variantsSorted = false
		}
	}
	return index
}

// Hover applies the hover variant registered for index, if any, and adds
// every group the primitive belongs to into groups. The variant is consumed
// so a second call leaves the primitive alone.
//
// It returns whether the primitive blocks hover for anything beneath it.
func (s *PrimitiveSet[P]) Hover(index int, groups *GroupSet) bool {
	occludes := false
	if slot, ok := s.metadata[index]; ok {
		md := &s.mdSlots[slot]
		if md.hasHover {
			s.primitives[index] = md.hover
			md.hasHover = false
		}
		occludes = md.occludesHover
	}

	i, _ := slices.BinarySearchFunc(s.membership, index, func(m groupMembership, idx int) int {
		return cmp.Compare(m.index, idx)
	})
	for ; i < len(s.membership) && s.membership[i].index == index; i++ {
		groups.Add(s.membership[i].group)
	}
	return occludes
}

// ApplyGroupVariants substitutes every pending variant registered against
// one of the active groups. active must be sorted ascending, as returned by
// GroupSet.Groups; a primitive with variants for several active groups ends
// up with the variant of the highest one.
func (s *PrimitiveSet[P]) ApplyGroupVariants(active []HoverGroup) {
	if len(active) == 0 || len(s.variants) == 0 {
		return
	}
	if !s.variantsSorted {
		slices.SortStableFunc(s.variants, func(a, b groupVariant[P]) int {
			if c := cmp.Compare(a.group, b.group); c != 0 {
				return c
			}
			return cmp.Compare(a.index, b.index)
		})
		s.variantsSorted = true
	}

	for _, g := range active {
		i, _ := slices.BinarySearchFunc(s.variants, g, func(v groupVariant[P], g HoverGroup) int {
			return cmp.Compare(v.group, g)
		})
		for ; i < len(s.variants) && s.variants[i].group == g; i++ {
			v := &s.variants[i]
			if !v.pending {
				continue
			}
			s.primitives[v.index] = v.variant
			v.pending = false
		}
	}
}

// sortByOrder stable-sorts the buffer by ascending order. Buffers filled
// by a single kind in paint order are usually sorted already.
func (s *PrimitiveSet[P]) sortByOrder() {
	byOrder := func(a, b P) int { return cmp.Compare(a.primitiveOrder(), b.primitiveOrder()) }
	if slices.IsSortedFunc(s.primitives, byOrder) {
		return
	}
	slices.SortStableFunc(s.primitives, byOrder)
}

// Clear drops all primitives and hover state, keeping buffer capacity.
func (s *PrimitiveSet[P]) Clear() {
	clear(s.primitives)
	s.primitives = s.primitives[:0]
	clear(s.metadata)
	clear(s.mdSlots)
	s.mdSlots = s.mdSlots[:0]
	s.membership = s.membership[:0]
	clear(s.variants)
	s.variants = s.variants[:0]
	s.variantsSorted = true
}

// grow pre-sizes the primitive buffer.
func (s *PrimitiveSet[P]) grow(n int) {
	s.primitives = slices.Grow(s.primitives, n)
}
