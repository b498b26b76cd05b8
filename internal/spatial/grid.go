// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package spatial provides the default bounds-indexed order structure used
// by a scene: it hands out one strictly increasing order per insertion and
// answers point-containment queries over the inserted bounds.
package spatial

import (
	"math"

	"github.com/gogpu/uiscene"
)

// DefaultCellSize is the edge length of a grid cell in scaled pixels.
const DefaultCellSize = 64

// maxCellsPerEntry caps how many cells one entry is filed under. Larger
// entries (window backgrounds, full-screen overlays) go to a side list that
// every query scans, which keeps insertion cost bounded.
const maxCellsPerEntry = 64

// maxRetainedCells is the cell count above which Clear drops cells that
// stayed empty for a whole frame, so a scrolling UI does not grow the map
// forever. Cells used in the frame being cleared are always kept.
const maxRetainedCells = 4096

// Hit is one result of a containment query.
type Hit[T any] struct {
	// Order is the value Insert returned for the entry.
	Order uint32
	// Data is the handle passed to Insert.
	Data T
}

type entry[T any] struct {
	bounds uiscene.Bounds
	order  uint32
	data   T
}

type cellKey struct {
	x, y int32
}

// Grid is a uniform-cell spatial index with a single global order counter.
//
// Entries are filed under every cell their bounds touch, so a point query
// only inspects one cell plus the oversized list. Cell addressing follows
// the row/column scheme of a tile grid, but the grid is unbounded: cells are
// created on demand and negative coordinates are allowed.
//
// Orders start at 1 after construction or Clear and increase by one per
// Insert, regardless of where the bounds lie.
//
// Grid is NOT safe for concurrent use.
type Grid[T any] struct {
	cellSize  float64
	entries   []entry[T]
	cells     map[cellKey][]int32
	oversized []int32
	nextOrder uint32
}

// NewGrid creates an empty grid. A non-positive cellSize selects
// DefaultCellSize.
func NewGrid[T any](cellSize float32) *Grid[T] {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid[T]{
		cellSize: float64(cellSize),
		cells:    make(map[cellKey][]int32),
	}
}

// Len returns the number of entries inserted since the last Clear.
func (g *Grid[T]) Len() int {
	return len(g.entries)
}

// Insert records bounds with its handle and returns the entry's order.
// The caller is expected to pass non-empty, already clipped bounds; empty
// bounds are still ordered but can never contain a point.
func (g *Grid[T]) Insert(bounds uiscene.Bounds, data T) uint32 {
	g.nextOrder++
	order := g.nextOrder
	idx := int32(len(g.entries))
	g.entries = append(g.entries, entry[T]{bounds: bounds, order: order, data: data})

	x0, y0, x1, y1, ok := g.cellRange(bounds)
	if !ok {
		g.oversized = append(g.oversized, idx)
		return order
	}
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			key := cellKey{x: cx, y: cy}
			g.cells[key] = append(g.cells[key], idx)
		}
	}
	return order
}

// FindContaining appends to dst every entry whose bounds contain p and
// returns the extended slice. Results are in no particular order.
func (g *Grid[T]) FindContaining(p uiscene.Point, dst []Hit[T]) []Hit[T] {
	cx, cy, ok := g.cellOf(p)
	if ok {
		for _, idx := range g.cells[cellKey{x: cx, y: cy}] {
			dst = g.appendIfContains(dst, idx, p)
		}
	}
	for _, idx := range g.oversized {
		dst = g.appendIfContains(dst, idx, p)
	}
	return dst
}

// Clear removes every entry and restarts orders at 1. Cell buffers are
// kept for reuse by the next frame; once the map holds more than
// maxRetainedCells cells, those unused since the previous Clear are deleted.
func (g *Grid[T]) Clear() {
	clear(g.entries)
	g.entries = g.entries[:0]
	g.oversized = g.oversized[:0]
	g.nextOrder = 0
	if g.cells == nil {
		g.cells = make(map[cellKey][]int32)
		return
	}
	trim := len(g.cells) > maxRetainedCells
	for k, v := range g.cells {
		if trim && len(v) == 0 {
			delete(g.cells, k)
			continue
		}
		g.cells[k] = v[:0]
	}
}

func (g *Grid[T]) appendIfContains(dst []Hit[T], idx int32, p uiscene.Point) []Hit[T] {
	e := &g.entries[idx]
	if e.bounds.Contains(p) {
		dst = append(dst, Hit[T]{Order: e.order, Data: e.data})
	}
	return dst
}

// cellRange returns the inclusive cell span covered by b. ok is false when
// the span is too large to file per cell or cannot be represented.
func (g *Grid[T]) cellRange(b uiscene.Bounds) (x0, y0, x1, y1 int32, ok bool) {
	fx0 := math.Floor(float64(b.Left()) / g.cellSize)
	fy0 := math.Floor(float64(b.Top()) / g.cellSize)
	fx1 := math.Floor(float64(b.Right()) / g.cellSize)
	fy1 := math.Floor(float64(b.Bottom()) / g.cellSize)
	if !inCellRange(fx0) || !inCellRange(fy0) || !inCellRange(fx1) || !inCellRange(fy1) {
		return 0, 0, 0, 0, false
	}
	if fx1 < fx0 || fy1 < fy0 {
		return 0, 0, 0, 0, false
	}
	if (fx1-fx0+1)*(fy1-fy0+1) > maxCellsPerEntry {
		return 0, 0, 0, 0, false
	}
	return int32(fx0), int32(fy0), int32(fx1), int32(fy1), true
}

func (g *Grid[T]) cellOf(p uiscene.Point) (cx, cy int32, ok bool) {
	fx := math.Floor(float64(p.X) / g.cellSize)
	fy := math.Floor(float64(p.Y) / g.cellSize)
	if !inCellRange(fx) || !inCellRange(fy) {
		return 0, 0, false
	}
	return int32(fx), int32(fy), true
}

// inCellRange rejects NaN, infinities and cell coordinates outside int32.
func inCellRange(f float64) bool {
	return f >= math.MinInt32 && f <= math.MaxInt32
}
