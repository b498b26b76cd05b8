// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package uiscene

import "fmt"

// ScaledPixels is a length in physical device pixels, after the window's
// scale factor has been applied to logical coordinates.
type ScaledPixels float32

// Scale converts a logical length to scaled pixels.
func Scale(logical, factor float32) ScaledPixels {
	return ScaledPixels(logical * factor)
}

// Point is a position in scaled-pixel screen space.
// The origin is the top-left corner; Y grows downwards.
type Point struct {
	X, Y ScaledPixels
}

// Pt is a convenience function to create a Point.
func Pt(x, y ScaledPixels) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width and height in scaled pixels.
type Size struct {
	Width, Height ScaledPixels
}

// Bounds is an axis-aligned rectangle given by its top-left origin and size.
// A Bounds with non-positive width or height is empty.
type Bounds struct {
	Origin Point
	Size   Size
}

// B is a convenience function to create Bounds from x, y, width and height.
func B(x, y, w, h ScaledPixels) Bounds {
	return Bounds{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Left returns the minimum X coordinate.
func (b Bounds) Left() ScaledPixels { return b.Origin.X }

// Top returns the minimum Y coordinate.
func (b Bounds) Top() ScaledPixels { return b.Origin.Y }

// Right returns the exclusive maximum X coordinate.
func (b Bounds) Right() ScaledPixels { return b.Origin.X + b.Size.Width }

// Bottom returns the exclusive maximum Y coordinate.
func (b Bounds) Bottom() ScaledPixels { return b.Origin.Y + b.Size.Height }

// IsEmpty reports whether the rectangle has no area.
// Negative and NaN extents count as empty.
func (b Bounds) IsEmpty() bool {
	return !(b.Size.Width > 0 && b.Size.Height > 0)
}

// Intersect returns the overlap of b and other.
// When the rectangles do not overlap the result has a non-positive
// width or height and IsEmpty reports true.
func (b Bounds) Intersect(other Bounds) Bounds {
	left := max(b.Left(), other.Left())
	top := max(b.Top(), other.Top())
	right := min(b.Right(), other.Right())
	bottom := min(b.Bottom(), other.Bottom())
	return Bounds{
		Origin: Point{X: left, Y: top},
		Size:   Size{Width: right - left, Height: bottom - top},
	}
}

// Union returns the smallest rectangle containing both b and other.
// Empty operands are ignored.
func (b Bounds) Union(other Bounds) Bounds {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	left := min(b.Left(), other.Left())
	top := min(b.Top(), other.Top())
	right := max(b.Right(), other.Right())
	bottom := max(b.Bottom(), other.Bottom())
	return Bounds{
		Origin: Point{X: left, Y: top},
		Size:   Size{Width: right - left, Height: bottom - top},
	}
}

// Contains reports whether p lies inside the rectangle.
// The test is half-open: the left and top edges are inside, the right and
// bottom edges are not, so adjacent rectangles never both contain a point.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left() && p.X < b.Right() &&
		p.Y >= b.Top() && p.Y < b.Bottom()
}

// String returns a string representation of the bounds.
func (b Bounds) String() string {
	return fmt.Sprintf("Bounds(%g,%g %gx%g)", b.Origin.X, b.Origin.Y, b.Size.Width, b.Size.Height)
}

// Corners holds a value per rectangle corner, typically a corner radius.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft ScaledPixels
}

// UniformCorners returns Corners with the same value at every corner.
func UniformCorners(r ScaledPixels) Corners {
	return Corners{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Edges holds a value per rectangle edge, typically a border width.
type Edges struct {
	Top, Right, Bottom, Left ScaledPixels
}

// UniformEdges returns Edges with the same value on every side.
func UniformEdges(w ScaledPixels) Edges {
	return Edges{Top: w, Right: w, Bottom: w, Left: w}
}

// ContentMask is the clip region a primitive is painted through.
// A primitive's bounds are intersected with the mask before it takes part
// in ordering, hit testing or batching.
type ContentMask struct {
	Bounds Bounds
}
