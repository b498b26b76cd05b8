// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame drives a scene once per window frame.
//
// A Driver tracks the pointer through a gpucontext.PointerEventSource,
// converts it from logical to physical pixels with the window's scale
// factor, and runs the clear, paint, finish and draw steps in order:
//
//	d, _ := frame.NewDriver(window)
//	d.Attach(pointerSource)
//
//	// each frame
//	if err := d.Frame(paint, draw); err != nil {
//	    log.Printf("frame: %v", err)
//	}
//
// When the pointer has left the window the scene is finished without hover.
package frame
