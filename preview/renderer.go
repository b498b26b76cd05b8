// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/vector"

	"github.com/gogpu/uiscene"
	"github.com/gogpu/uiscene/scene"
)

// Preview errors.
var (
	// ErrInvalidSize is returned by New for non-positive dimensions.
	ErrInvalidSize = errors.New("preview: width and height must be positive")

	// ErrNotFinished is returned by Render for a scene that has not been
	// finished.
	ErrNotFinished = errors.New("preview: scene is not finished")

	// ErrNoTextureCreator is returned by RenderTo when the draw context
	// cannot create textures.
	ErrNoTextureCreator = errors.New("preview: draw context has no texture creator")
)

// AtlasSource resolves sprite atlas textures to images. Monochrome atlases
// are read through their alpha channel as coverage.
type AtlasSource interface {
	AtlasImage(id scene.AtlasTextureID) (image.Image, bool)
}

// Renderer draws finished scenes on the CPU for debugging and snapshot
// tests. It favors legibility over fidelity: shadows are drawn unblurred
// at reduced opacity, wavy underlines are drawn straight and sprites
// without an atlas image are drawn as tinted boxes.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	img        *image.RGBA
	rast       *vector.Rasterizer
	background color.RGBA
	atlas      AtlasSource
	batches    int
}

// New creates a renderer with a width×height target in physical pixels.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		rast:       vector.NewRasterizer(width, height),
		background: toRGBA(o.background),
		atlas:      o.atlas,
	}
	r.Reset()
	return r, nil
}

// Image returns the render target. It is reused by later renders.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Batches returns the number of batches drawn since the last Reset.
func (r *Renderer) Batches() int {
	return r.batches
}

// Reset fills the target with the background color.
func (r *Renderer) Reset() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	r.batches = 0
}

// Render clears the target and draws every batch of s.
func (r *Renderer) Render(s *scene.Scene) error {
	if !s.Finished() {
		return ErrNotFinished
	}
	r.Reset()
	for b := range s.Batches() {
		if err := r.Draw(b); err != nil {
			return err
		}
	}
	uiscene.Logger().Debug("preview: rendered", "batches", r.batches, "primitives", s.Len())
	return nil
}

// Draw paints one batch over the current target. Its signature matches
// frame.DrawFunc so a Renderer can stand in for a GPU backend.
func (r *Renderer) Draw(b scene.Batch) error {
	switch b.Kind {
	case scene.KindShadow:
		for _, s := range b.Shadows {
			c := s.Color
			c.A *= 0.5
			r.fillRoundedRect(s.Bounds, s.CornerRadii, s.ContentMask, c)
		}
	case scene.KindQuad:
		for _, q := range b.Quads {
			r.drawQuad(q)
		}
	case scene.KindPath:
		for i := range b.Paths {
			r.drawPath(&b.Paths[i])
		}
	case scene.KindUnderline:
		for _, u := range b.Underlines {
			line := u.Bounds
			if u.Thickness > 0 && u.Thickness < line.Size.Height {
				line.Size.Height = u.Thickness
			}
			r.fillRoundedRect(line, uiscene.Corners{}, u.ContentMask, u.Color)
		}
	case scene.KindMonochromeSprite:
		img, ok := r.atlasImage(b.TextureID)
		for _, s := range b.MonochromeSprites {
			if !ok {
				r.fillRoundedRect(s.Bounds, uiscene.Corners{}, s.ContentMask, s.Color)
				continue
			}
			r.drawMasked(s.Bounds, s.ContentMask, image.NewUniform(toRGBA(s.Color)), image.Point{}, img, tileOrigin(s.Tile))
		}
	case scene.KindPolychromeSprite:
		img, ok := r.atlasImage(b.TextureID)
		for _, s := range b.PolychromeSprites {
			if !ok {
				r.fillRoundedRect(s.Bounds, s.CornerRadii, s.ContentMask, placeholder)
				continue
			}
			opacity := image.NewUniform(color.Alpha{A: unitToByte(s.Opacity)})
			r.drawMasked(s.Bounds, s.ContentMask, img, tileOrigin(s.Tile), opacity, image.Point{})
		}
	case scene.KindSurface:
		for _, s := range b.Surfaces {
			r.fillRoundedRect(s.Bounds, uiscene.Corners{}, s.ContentMask, placeholder)
		}
	default:
		return fmt.Errorf("preview: unknown batch kind %d", b.Kind)
	}
	r.batches++
	return nil
}

// RenderTo uploads the target as a texture and draws it at (x, y).
func (r *Renderer) RenderTo(dc gpucontext.TextureDrawer, x, y float32) error {
	creator := dc.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}
	b := r.img.Bounds()
	tex, err := creator.NewTextureFromRGBA(b.Dx(), b.Dy(), r.img.Pix)
	if err != nil {
		return fmt.Errorf("preview: NewTextureFromRGBA failed: %w", err)
	}
	return dc.DrawTexture(tex, x, y)
}

// placeholder marks content the preview cannot show.
var placeholder = gputypes.Color{R: 1, G: 0, B: 1, A: 0.5}

func (r *Renderer) atlasImage(id scene.AtlasTextureID) (image.Image, bool) {
	if r.atlas == nil {
		return nil, false
	}
	return r.atlas.AtlasImage(id)
}

func (r *Renderer) drawQuad(q scene.Quad) {
	bw := q.BorderWidths
	if bw == (uiscene.Edges{}) || q.BorderColor.A == 0 {
		r.fillRoundedRect(q.Bounds, q.CornerRadii, q.ContentMask, q.Background)
		return
	}

	inner := uiscene.B(
		q.Bounds.Left()+bw.Left,
		q.Bounds.Top()+bw.Top,
		q.Bounds.Size.Width-bw.Left-bw.Right,
		q.Bounds.Size.Height-bw.Top-bw.Bottom,
	)
	innerRadii := shrinkCorners(q.CornerRadii, bw)
	r.fillRoundedRect(inner, innerRadii, q.ContentMask, q.Background)

	// The border is the outer outline minus the inner one, traced in the
	// opposite direction so the rasterizer's signed coverage cancels.
	dst, ok := r.begin(q.ContentMask)
	if !ok {
		return
	}
	r.roundedRect(q.Bounds, q.CornerRadii, dst.Min, false)
	if !inner.IsEmpty() {
		r.roundedRect(inner, innerRadii, dst.Min, true)
	}
	r.fill(dst, q.BorderColor)
}

func (r *Renderer) drawPath(p *scene.Path) {
	dst, ok := r.begin(p.ContentMask)
	if !ok || len(p.Vertices) < 3 {
		return
	}
	off := dst.Min
	for i := 0; i+2 < len(p.Vertices); i += 3 {
		a, b, c := p.Vertices[i], p.Vertices[i+1], p.Vertices[i+2]
		r.moveTo(a.XY, off)
		if a.ST == [2]float32{0, 0} {
			// Curve triangle: the region between the chord and the curve.
			r.quadTo(b.XY, c.XY, off)
		} else {
			r.lineTo(b.XY, off)
			r.lineTo(c.XY, off)
		}
		r.rast.ClosePath()
	}
	r.fill(dst, p.Color)
}

// drawMasked composites src through mask inside bounds clipped by cm.
func (r *Renderer) drawMasked(bounds uiscene.Bounds, cm uiscene.ContentMask,
	src image.Image, sp image.Point, mask image.Image, mp image.Point) {
	b := bounds.Intersect(cm.Bounds)
	dst := pixelRect(b).Intersect(r.img.Bounds())
	if dst.Empty() {
		return
	}
	origin := pixelRect(bounds).Min
	shift := dst.Min.Sub(origin)
	draw.DrawMask(r.img, dst, src, sp.Add(shift), mask, mp.Add(shift), draw.Over)
}

func (r *Renderer) fillRoundedRect(b uiscene.Bounds, radii uiscene.Corners, cm uiscene.ContentMask, c gputypes.Color) {
	if b.IsEmpty() || c.A <= 0 {
		return
	}
	dst, ok := r.begin(cm)
	if !ok {
		return
	}
	r.roundedRect(b, radii, dst.Min, false)
	r.fill(dst, c)
}

// begin resets the rasterizer to the pixel rectangle of the content mask.
// Path coordinates are then given relative to the returned rectangle.
func (r *Renderer) begin(cm uiscene.ContentMask) (image.Rectangle, bool) {
	dst := pixelRect(cm.Bounds).Intersect(r.img.Bounds())
	if dst.Empty() {
		return dst, false
	}
	r.rast.Reset(dst.Dx(), dst.Dy())
	return dst, true
}

func (r *Renderer) fill(dst image.Rectangle, c gputypes.Color) {
	r.rast.DrawOp = draw.Over
	r.rast.Draw(r.img, dst, image.NewUniform(toRGBA(c)), image.Point{})
}

// roundedRect traces b with quadratic corner arcs, clockwise in screen
// space or counter-clockwise when reverse is set.
func (r *Renderer) roundedRect(b uiscene.Bounds, radii uiscene.Corners, off image.Point, reverse bool) {
	radii = clampCorners(radii, b)
	l, t, rt, bt := b.Left(), b.Top(), b.Right(), b.Bottom()
	tl, tr, br, bl := radii.TopLeft, radii.TopRight, radii.BottomRight, radii.BottomLeft

	type seg struct {
		to, ctrl uiscene.Point
		curve    bool
	}
	start := uiscene.Pt(l+tl, t)
	segs := [8]seg{
		{to: uiscene.Pt(rt-tr, t)},
		{to: uiscene.Pt(rt, t+tr), ctrl: uiscene.Pt(rt, t), curve: tr > 0},
		{to: uiscene.Pt(rt, bt-br)},
		{to: uiscene.Pt(rt-br, bt), ctrl: uiscene.Pt(rt, bt), curve: br > 0},
		{to: uiscene.Pt(l+bl, bt)},
		{to: uiscene.Pt(l, bt-bl), ctrl: uiscene.Pt(l, bt), curve: bl > 0},
		{to: uiscene.Pt(l, t+tl)},
		{to: start, ctrl: uiscene.Pt(l, t), curve: tl > 0},
	}

	r.moveTo(start, off)
	if !reverse {
		for _, s := range segs {
			if s.curve {
				r.quadTo(s.ctrl, s.to, off)
			} else {
				r.lineTo(s.to, off)
			}
		}
	} else {
		// Walk backwards: each segment now ends where the previous began.
		for i := len(segs) - 1; i >= 0; i-- {
			from := start
			if i > 0 {
				from = segs[i-1].to
			}
			if segs[i].curve {
				r.quadTo(segs[i].ctrl, from, off)
			} else {
				r.lineTo(from, off)
			}
		}
	}
	r.rast.ClosePath()
}

func (r *Renderer) moveTo(p uiscene.Point, off image.Point) {
	r.rast.MoveTo(float32(p.X)-float32(off.X), float32(p.Y)-float32(off.Y))
}

func (r *Renderer) lineTo(p uiscene.Point, off image.Point) {
	r.rast.LineTo(float32(p.X)-float32(off.X), float32(p.Y)-float32(off.Y))
}

func (r *Renderer) quadTo(ctrl, p uiscene.Point, off image.Point) {
	r.rast.QuadTo(
		float32(ctrl.X)-float32(off.X), float32(ctrl.Y)-float32(off.Y),
		float32(p.X)-float32(off.X), float32(p.Y)-float32(off.Y),
	)
}

// clampCorners limits each radius to half the shorter side of b.
func clampCorners(c uiscene.Corners, b uiscene.Bounds) uiscene.Corners {
	limit := min(b.Size.Width, b.Size.Height) / 2
	if limit < 0 {
		limit = 0
	}
	clampOne := func(v uiscene.ScaledPixels) uiscene.ScaledPixels { return max(0, min(v, limit)) }
	return uiscene.Corners{
		TopLeft:     clampOne(c.TopLeft),
		TopRight:    clampOne(c.TopRight),
		BottomRight: clampOne(c.BottomRight),
		BottomLeft:  clampOne(c.BottomLeft),
	}
}

func shrinkCorners(c uiscene.Corners, bw uiscene.Edges) uiscene.Corners {
	return uiscene.Corners{
		TopLeft:     max(0, c.TopLeft-max(bw.Top, bw.Left)),
		TopRight:    max(0, c.TopRight-max(bw.Top, bw.Right)),
		BottomRight: max(0, c.BottomRight-max(bw.Bottom, bw.Right)),
		BottomLeft:  max(0, c.BottomLeft-max(bw.Bottom, bw.Left)),
	}
}

// pixelRect returns the smallest pixel rectangle covering b.
func pixelRect(b uiscene.Bounds) image.Rectangle {
	if b.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(float64(b.Left()))),
		int(math.Floor(float64(b.Top()))),
		int(math.Ceil(float64(b.Right()))),
		int(math.Ceil(float64(b.Bottom()))),
	)
}

func tileOrigin(t scene.AtlasTile) image.Point {
	return image.Pt(int(t.Bounds.X), int(t.Bounds.Y))
}

func unitToByte(v float32) uint8 {
	return uint8(math.Round(float64(max(0, min(1, v))) * 255))
}

// toRGBA converts a straight-alpha color to premultiplied 8-bit RGBA.
func toRGBA(c gputypes.Color) color.RGBA {
	a := max(0, min(1, c.A))
	premul := func(v float64) uint8 {
		return uint8(math.Round(max(0, min(1, v)) * a * 255))
	}
	return color.RGBA{R: premul(c.R), G: premul(c.G), B: premul(c.B), A: uint8(math.Round(a * 255))}
}
