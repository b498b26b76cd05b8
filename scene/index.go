// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/gogpu/uiscene"
	"github.com/gogpu/uiscene/internal/spatial"
)

// Hit is one result of a point query against an OrderIndex.
type Hit = spatial.Hit[PrimitiveIndex]

// OrderIndex assigns paint order and answers hit-test queries.
//
// Insert must return a strictly increasing order across all calls between
// two Clear calls, whatever the kind of primitive. FindContaining appends
// to dst every entry whose bounds contain p, in any order, and returns the
// extended slice. Implementations are not required to be safe for
// concurrent use.
//
// The default index is a uniform grid; a caller with a better structure for
// its workload (an interval tree, an R-tree) can inject one with
// WithOrderIndex.
type OrderIndex interface {
	Insert(bounds uiscene.Bounds, handle PrimitiveIndex) uint32
	FindContaining(p uiscene.Point, dst []Hit) []Hit
	Clear()
}

var _ OrderIndex = (*spatial.Grid[PrimitiveIndex])(nil)

func newDefaultIndex() OrderIndex {
	return spatial.NewGrid[PrimitiveIndex](spatial.DefaultCellSize)
}
