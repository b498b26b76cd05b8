// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/uiscene"
)

// PathID identifies a path for atlas caching by the rasterizer.
type PathID uint32

// PathVertex is one triangle corner of a tessellated path.
//
// ST is the corner's position in the quadratic-curve parameter space used
// by a fragment shader to test u² - v < 0: fan triangles use (0, 1) at
// every corner, curve triangles use (0, 0), (0.5, 0), (1, 1).
type PathVertex struct {
	XY uiscene.Point
	ST [2]float32
}

// Path is a filled vector shape stored as a triangle list.
//
// Build it with NewPath followed by LineTo and CurveTo; every segment is fanned
// from the start point, and the bounds grow as triangles are added.
//
//	p := scene.NewPath(uiscene.Pt(0, 0))
//	p.LineTo(uiscene.Pt(10, 0))
//	p.CurveTo(uiscene.Pt(10, 10), uiscene.Pt(14, 4))
//	p.LineTo(uiscene.Pt(0, 10))
//	p.Color = gputypes.ColorRed
type Path struct {
	ID          PathID
	Order       uint32
	Bounds      uiscene.Bounds
	ContentMask uiscene.ContentMask
	Vertices    []PathVertex
	Color       gputypes.Color

	start        uiscene.Point
	current      uiscene.Point
	contourCount int
}

// NewPath starts a path at start with zero-size bounds there.
func NewPath(start uiscene.Point) Path {
	return Path{
		Bounds:  uiscene.Bounds{Origin: start},
		start:   start,
		current: start,
	}
}

var fanST = [3][2]float32{{0, 1}, {0, 1}, {0, 1}}

// LineTo adds a straight segment from the current point to to.
func (p *Path) LineTo(to uiscene.Point) {
	p.contourCount++
	if p.contourCount > 1 {
		p.pushTriangle([3]uiscene.Point{p.start, p.current, to}, fanST)
	}
	p.current = to
}

// CurveTo adds a quadratic Bézier segment from the current point to to with
// control point ctrl.
func (p *Path) CurveTo(to, ctrl uiscene.Point) {
	p.contourCount++
	if p.contourCount > 1 {
		p.pushTriangle([3]uiscene.Point{p.start, p.current, to}, fanST)
	}
	p.pushTriangle(
		[3]uiscene.Point{p.current, ctrl, to},
		[3][2]float32{{0, 0}, {0.5, 0}, {1, 1}},
	)
	p.current = to
}

func (p *Path) pushTriangle(xy [3]uiscene.Point, st [3][2]float32) {
	for i := range xy {
		p.Bounds = growToPoint(p.Bounds, xy[i])
		p.Vertices = append(p.Vertices, PathVertex{XY: xy[i], ST: st[i]})
	}
}

// growToPoint extends b to include pt. Unlike Bounds.Union it keeps a
// zero-size starting rectangle anchored where the path began.
func growToPoint(b uiscene.Bounds, pt uiscene.Point) uiscene.Bounds {
	left := min(b.Left(), pt.X)
	top := min(b.Top(), pt.Y)
	right := max(b.Right(), pt.X)
	bottom := max(b.Bottom(), pt.Y)
	return uiscene.B(left, top, right-left, bottom-top)
}

func (p Path) clippedBounds() uiscene.Bounds { return p.Bounds.Intersect(p.ContentMask.Bounds) }
func (p Path) primitiveOrder() uint32        { return p.Order }
func (p Path) withOrder(order uint32) Path   { p.Order = order; return p }
