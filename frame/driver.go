// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/uiscene"
	"github.com/gogpu/uiscene/scene"
)

// Driver errors.
var (
	// ErrNilWindow is returned by NewDriver when no window provider is given.
	ErrNilWindow = errors.New("frame: window provider is nil")

	// ErrNilCallback is returned by Frame when paint or draw is nil.
	ErrNilCallback = errors.New("frame: paint and draw callbacks are required")

	// ErrDraw wraps an error returned by the draw callback.
	ErrDraw = errors.New("frame: draw failed")

	// ErrClosed is returned by Frame after Close.
	ErrClosed = errors.New("frame: driver is closed")
)

// PaintFunc inserts the frame's primitives into s. Coordinates are in
// physical pixels; multiply logical values by Driver.ScaleFactor.
type PaintFunc func(s *scene.Scene)

// DrawFunc submits one batch to the rasterizer.
type DrawFunc func(b scene.Batch) error

// Driver runs the per-frame cycle for a window: clear the scene, paint,
// resolve hover at the last known pointer position, then hand every batch
// to the rasterizer.
//
// Pointer events may arrive from another goroutine; Frame itself must be
// called from one goroutine at a time.
type Driver struct {
	window gpucontext.WindowProvider
	scene  *scene.Scene
	pooled bool
	it     scene.BatchIterator

	mu         sync.Mutex
	pointer    uiscene.Point // logical pixels
	hasPointer bool

	frames uint64
}

// NewDriver creates a driver for window.
//
// Example:
//
//	d, err := frame.NewDriver(app.Window())
//	if err != nil {
//	    return err
//	}
//	d.Attach(app.PointerEvents())
//	err = d.Frame(view.Paint, renderer.Draw)
func NewDriver(window gpucontext.WindowProvider, opts ...Option) (*Driver, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	d := &Driver{window: window, scene: o.scene}
	if d.scene == nil {
		d.scene = scene.DefaultPool.Get()
		d.pooled = true
	}
	return d, nil
}

// Close releases the driver's scene. A pooled scene goes back to
// scene.DefaultPool; a scene passed with WithScene is left to its owner.
func (d *Driver) Close() {
	if d.scene == nil {
		return
	}
	if d.pooled {
		scene.DefaultPool.Put(d.scene)
	}
	d.scene = nil
	d.it.Reset(nil)
}

// Scene returns the scene the driver paints into, or nil after Close.
func (d *Driver) Scene() *scene.Scene {
	return d.scene
}

// Frames returns the number of frames completed successfully.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// ScaleFactor returns the window's logical-to-physical pixel ratio.
// Non-positive factors reported by the host are treated as 1.
func (d *Driver) ScaleFactor() float32 {
	sf := d.window.ScaleFactor()
	if sf <= 0 {
		uiscene.Logger().Warn("frame: non-positive scale factor, using 1", "scale", sf)
		return 1
	}
	return float32(sf)
}

// Attach subscribes the driver to pointer events from src.
func (d *Driver) Attach(src gpucontext.PointerEventSource) {
	src.OnPointer(d.HandlePointer)
}

// HandlePointer updates the tracked pointer from ev and asks the window
// for a redraw when hover may have changed.
func (d *Driver) HandlePointer(ev gpucontext.PointerEvent) {
	d.mu.Lock()
	changed := false
	switch ev.Type {
	case gpucontext.PointerDown, gpucontext.PointerUp, gpucontext.PointerMove, gpucontext.PointerEnter:
		p := uiscene.Point{X: uiscene.ScaledPixels(ev.X), Y: uiscene.ScaledPixels(ev.Y)}
		changed = !d.hasPointer || p != d.pointer
		d.pointer, d.hasPointer = p, true
	case gpucontext.PointerLeave, gpucontext.PointerCancel:
		changed = d.hasPointer
		d.hasPointer = false
	default:
		uiscene.Logger().Debug("frame: ignoring pointer event", "type", ev.Type)
	}
	d.mu.Unlock()

	if changed {
		d.window.RequestRedraw()
	}
}

// Pointer returns the pointer position in physical pixels and whether the
// pointer is inside the window.
func (d *Driver) Pointer() (uiscene.Point, bool) {
	d.mu.Lock()
	p, ok := d.pointer, d.hasPointer
	d.mu.Unlock()
	if !ok {
		return uiscene.Point{}, false
	}

	w, h := d.window.Size()
	if p.X < 0 || p.Y < 0 || float64(p.X) >= float64(w) || float64(p.Y) >= float64(h) {
		return uiscene.Point{}, false
	}
	sf := d.ScaleFactor()
	return uiscene.Point{
		X: uiscene.Scale(float32(p.X), sf),
		Y: uiscene.Scale(float32(p.Y), sf),
	}, true
}

// Frame builds and submits one frame. The scene is cleared first, so
// primitives never carry over between frames. Drawing stops at the first
// error from draw, which is returned wrapped in ErrDraw.
func (d *Driver) Frame(paint PaintFunc, draw DrawFunc) error {
	if d.scene == nil {
		return ErrClosed
	}
	if paint == nil || draw == nil {
		return ErrNilCallback
	}

	s := d.scene
	s.Clear()
	paint(s)

	if p, ok := d.Pointer(); ok {
		s.Finish(p)
	} else {
		s.FinishUnhovered()
	}

	batches := 0
	d.it.Reset(s)
	for d.it.Next() {
		b := d.it.Batch()
		if err := draw(b); err != nil {
			return fmt.Errorf("%w: batch %d (%s): %w", ErrDraw, batches, b, err)
		}
		batches++
	}
	d.frames++

	if log := uiscene.Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		st := s.Stats()
		log.Debug("frame: submitted",
			"frame", d.frames,
			"batches", batches,
			"primitives", st.Inserted,
			"rejected", st.Rejected,
			"hovered", st.Hovered)
	}
	return nil
}
