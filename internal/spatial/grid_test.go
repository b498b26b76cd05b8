// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spatial

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/uiscene"
)

func hitData(hits []Hit[string]) []string {
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.Data)
	}
	slices.Sort(out)
	return out
}

func TestGridOrdersStrictlyIncrease(t *testing.T) {
	g := NewGrid[int](0)
	bounds := []uiscene.Bounds{
		uiscene.B(0, 0, 10, 10),
		uiscene.B(-500, -500, 10, 10),
		uiscene.B(0, 0, 5000, 5000), // oversized
		uiscene.B(100, 100, 1, 1),
	}
	var last uint32
	for i, b := range bounds {
		order := g.Insert(b, i)
		if order <= last {
			t.Fatalf("Insert #%d order = %d, want > %d", i, order, last)
		}
		last = order
	}
	if last != uint32(len(bounds)) {
		t.Errorf("last order = %d, want %d", last, len(bounds))
	}
	if g.Len() != len(bounds) {
		t.Errorf("Len() = %d, want %d", g.Len(), len(bounds))
	}
}

func TestGridFindContaining(t *testing.T) {
	g := NewGrid[string](32)
	g.Insert(uiscene.B(0, 0, 100, 100), "panel")
	g.Insert(uiscene.B(40, 40, 20, 20), "button")
	g.Insert(uiscene.B(-2000, -2000, 8000, 8000), "backdrop")
	g.Insert(uiscene.B(200, 200, 10, 10), "far")
	g.Insert(uiscene.B(-70, -70, 20, 20), "negative")

	tests := []struct {
		name string
		p    uiscene.Point
		want []string
	}{
		{"inside nested", uiscene.Pt(50, 50), []string{"backdrop", "button", "panel"}},
		{"panel only", uiscene.Pt(5, 95), []string{"backdrop", "panel"}},
		{"right edge exclusive", uiscene.Pt(100, 50), []string{"backdrop"}},
		{"negative coords", uiscene.Pt(-60, -55), []string{"backdrop", "negative"}},
		{"outside everything", uiscene.Pt(9000, 9000), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hitData(g.FindContaining(tt.p, nil))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FindContaining(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestGridHitCarriesOrder(t *testing.T) {
	g := NewGrid[string](0)
	g.Insert(uiscene.B(0, 0, 10, 10), "a")
	b := g.Insert(uiscene.B(0, 0, 10, 10), "b")
	for _, h := range g.FindContaining(uiscene.Pt(1, 1), nil) {
		if h.Data == "b" && h.Order != b {
			t.Errorf("hit b order = %d, want %d", h.Order, b)
		}
	}
}

func TestGridEntrySpanningCellsReportedOnce(t *testing.T) {
	g := NewGrid[string](16)
	g.Insert(uiscene.B(0, 0, 100, 100), "wide")
	for _, p := range []uiscene.Point{uiscene.Pt(1, 1), uiscene.Pt(50, 50), uiscene.Pt(99, 99)} {
		if got := g.FindContaining(p, nil); len(got) != 1 {
			t.Errorf("FindContaining(%v) returned %d hits, want 1", p, len(got))
		}
	}
}

func TestGridEmptyBoundsNeverHit(t *testing.T) {
	g := NewGrid[string](0)
	g.Insert(uiscene.B(10, 10, 0, 10), "zero")
	g.Insert(uiscene.B(10, 10, -5, -5), "negative")
	for _, p := range []uiscene.Point{uiscene.Pt(10, 10), uiscene.Pt(8, 8), uiscene.Pt(10, 15)} {
		if got := g.FindContaining(p, nil); len(got) != 0 {
			t.Errorf("FindContaining(%v) = %v, want no hits", p, hitData(got))
		}
	}
}

func TestGridNaNPoint(t *testing.T) {
	g := NewGrid[string](0)
	g.Insert(uiscene.B(-1e6, -1e6, 2e6, 2e6), "huge")
	nan := uiscene.ScaledPixels(math.NaN())
	if got := g.FindContaining(uiscene.Pt(nan, nan), nil); len(got) != 0 {
		t.Errorf("FindContaining(NaN) = %v, want no hits", hitData(got))
	}
}

func TestGridClearRestartsOrders(t *testing.T) {
	g := NewGrid[int](0)
	first := []uint32{
		g.Insert(uiscene.B(0, 0, 10, 10), 0),
		g.Insert(uiscene.B(5, 5, 10, 10), 1),
	}
	g.Clear()
	if g.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", g.Len())
	}
	if hits := g.FindContaining(uiscene.Pt(6, 6), nil); len(hits) != 0 {
		t.Fatalf("FindContaining after Clear returned %d hits", len(hits))
	}
	second := []uint32{
		g.Insert(uiscene.B(0, 0, 10, 10), 0),
		g.Insert(uiscene.B(5, 5, 10, 10), 1),
	}
	if !slices.Equal(first, second) {
		t.Errorf("orders after Clear = %v, want %v", second, first)
	}
}

// fillRow inserts n unit entries spaced four cells apart; each touches a
// 2x2 block of cells.
func fillRow(g *Grid[int], n int) {
	for i := range n {
		g.Insert(uiscene.B(uiscene.ScaledPixels(i*4), 0, 1, 1), i)
	}
}

func TestGridClearTrimsIdleCells(t *testing.T) {
	g := NewGrid[int](1)
	fillRow(g, maxRetainedCells)
	g.Clear()
	if want := 4 * maxRetainedCells; len(g.cells) != want {
		t.Fatalf("cells after busy frame = %d, want %d kept", len(g.cells), want)
	}

	fillRow(g, 1)
	g.Clear()
	if len(g.cells) != 4 {
		t.Errorf("cells after quiet frame = %d, want 4", len(g.cells))
	}
	g.Insert(uiscene.B(0, 0, 1, 1), 0)
	if hits := g.FindContaining(uiscene.Pt(0.5, 0.5), nil); len(hits) != 1 {
		t.Errorf("FindContaining() after trim = %d hits, want 1", len(hits))
	}
}

func TestGridLargeFramesReuseCells(t *testing.T) {
	g := NewGrid[int](1)
	frame := func() {
		g.Clear()
		fillRow(g, maxRetainedCells+10)
	}
	frame()
	if allocs := testing.AllocsPerRun(5, frame); allocs != 0 {
		t.Errorf("allocations per large frame = %v, want 0", allocs)
	}
}

func BenchmarkGridInsertFind(b *testing.B) {
	g := NewGrid[int](0)
	b.ReportAllocs()
	for b.Loop() {
		g.Clear()
		for i := range 1000 {
			x := uiscene.ScaledPixels(i % 40 * 30)
			y := uiscene.ScaledPixels(i / 40 * 30)
			g.Insert(uiscene.B(x, y, 40, 40), i)
		}
		_ = g.FindContaining(uiscene.Pt(310, 310), nil)
	}
}
