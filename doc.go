// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package uiscene assembles the primitives of one UI paint pass into an
// ordered scene, resolves pointer hover against it and hands the result to
// a rasterizer as homogeneous draw batches.
//
// # Overview
//
// A frame goes through four steps:
//
//	s.Clear()                        // reuse last frame's buffers
//	s.InsertQuad(q, &hovered)        // paint traversal, any kind order
//	s.Finish(pointer)                // hover resolution + per-kind sort
//	for b := range s.Batches() { ... } // draw in painter's order
//
// The root package holds the scaled-pixel geometry shared by every
// sub-package and the package logger.
//
// # Architecture
//
//   - scene: primitives, primitive stores, hover groups, Scene and the batch merger
//   - internal/spatial: default bounds-indexed order index
//   - frame: per-frame driver wired to gpucontext pointer and window sources
//   - preview: CPU debug rasterizer for finished scenes
//
// # Coordinate System
//
// All geometry is in scaled (physical) pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Logging
//
// uiscene is silent by default. See [SetLogger].
package uiscene
