// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package preview rasterizes finished scenes on the CPU.
//
// It exists for debugging and golden-image tests, not for production
// rendering. Batches are drawn in order into an *image.RGBA with
// golang.org/x/image/vector, each primitive clipped to its content mask.
//
//	r, _ := preview.New(800, 600, preview.WithBackground(gputypes.ColorWhite))
//	if err := r.Render(s); err != nil {
//	    return err
//	}
//	png.Encode(f, r.Image())
package preview
