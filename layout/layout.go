// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/loom-ml/loom/internal/layout"
)

// Type aliases for the public API.

// Int is a scalar leaf value, either static or dynamic.
type Int = layout.Int

// IntTuple is a recursively nested tuple of scalars, the foundation for
// shapes, strides and structured coordinates.
type IntTuple = layout.IntTuple

// Layout is an immutable (Shape, Stride) pair mapping coordinates to
// linear indices.
type Layout = layout.Layout

// Tiler selects per-mode parameters for composition, division and product.
type Tiler = layout.Tiler

// Sentinel errors. Wrapped errors returned by the algebra match these with
// errors.Is.
var (
	ErrShapeStrideMismatch     = layout.ErrShapeStrideMismatch
	ErrCoordinateOutOfRange    = layout.ErrCoordinateOutOfRange
	ErrCompositionDivisibility = layout.ErrCompositionDivisibility
	ErrDivisionDivisibility    = layout.ErrDivisionDivisibility
)

// Value constructors.

// S returns a static scalar, known to the algebra and available to
// compile-time simplification.
func S(v int) Int { return layout.S(v) }

// D returns a dynamic scalar carrying the runtime value v. The algebra
// treats it as opaque: no simplification depends on it.
func D(v int) Int { return layout.D(v) }

// Leaf returns a single-scalar tuple.
func Leaf(v Int) IntTuple { return layout.Leaf(v) }

// Tuple returns a tuple with the given modes.
func Tuple(modes ...IntTuple) IntTuple { return layout.Tuple(modes...) }

// Ints returns a flat tuple of static values.
//
// Example:
//
//	layout.Ints(4, 2, 3) // the shape (4,2,3)
func Ints(vs ...int) IntTuple { return layout.Ints(vs...) }

// Layout constructors.

// MakeLayout constructs a layout from congruent shape and stride tuples.
// It fails with ErrShapeStrideMismatch when the trees diverge, reporting
// every offending mode.
func MakeLayout(shape, stride IntTuple) (Layout, error) {
	return layout.MakeLayout(shape, stride)
}

// MakeLayoutPacked constructs a layout with the canonical left-to-right
// compact stride, where the leftmost mode varies fastest.
//
// Example:
//
//	layout.MakeLayoutPacked(layout.Ints(4, 8)) // (4,8):(1,4)
func MakeLayoutPacked(shape IntTuple) Layout {
	return layout.MakeLayoutPacked(shape)
}

// Tiler constructors.

// TileOf returns a tiler holding a single layout, applied to a target as a
// whole.
func TileOf(l Layout) Tiler { return layout.TileOf(l) }

// Tile returns a tuple tiler whose entries address a target's top-level
// modes in order; modes without an entry pass through untouched.
func Tile(items ...Tiler) Tiler { return layout.Tile(items...) }

// Coalesce fully flattens and merges a layout without changing it as a
// function: the result has the same size, depth at most one, and evaluates
// identically at every index.
func Coalesce(l Layout) Layout { return layout.Coalesce(l) }

// CoalesceProfile coalesces each top-level mode independently, never
// merging across mode boundaries. Profile entries are 0 to fully coalesce
// a mode or 1 to merge within it while keeping the mode present.
func CoalesceProfile(l Layout, profile []int) (Layout, error) {
	return layout.CoalesceProfile(l, profile)
}

// Compose returns the functional composition of two layouts:
// Compose(A, B)(c) == A(B(c)) for every coordinate c in B's domain.
func Compose(a, b Layout) (Layout, error) { return layout.Compose(a, b) }

// ComposeTiler applies composition by mode using a tiler.
func ComposeTiler(a Layout, t Tiler) (Layout, error) {
	return layout.ComposeTiler(a, t)
}

// LogicalDivide splits a layout into tile and rest components in place.
func LogicalDivide(l Layout, t Tiler) (Layout, error) {
	return layout.LogicalDivide(l, t)
}

// ZippedDivide gathers all tile submodes into the first top-level mode and
// all rest plus untouched modes into the second.
func ZippedDivide(l Layout, t Tiler) (Layout, error) {
	return layout.ZippedDivide(l, t)
}

// TiledDivide keeps the tile group as the first top-level mode and each
// rest or untouched mode as its own subsequent top-level mode.
func TiledDivide(l Layout, t Tiler) (Layout, error) {
	return layout.TiledDivide(l, t)
}

// FlatDivide produces no grouping at all: every tile, rest and untouched
// mode is its own top-level mode, tiles first.
func FlatDivide(l Layout, t Tiler) (Layout, error) {
	return layout.FlatDivide(l, t)
}

// LogicalProduct replicates a layout according to a tiler; the result's
// size is size(l) times the tiler size.
func LogicalProduct(l Layout, t Tiler) (Layout, error) {
	return layout.LogicalProduct(l, t)
}

// BlockedProduct pairs each original mode with its replication factor so
// the result mirrors l's mode structure, giving a block distribution.
func BlockedProduct(l Layout, t Tiler) (Layout, error) {
	return layout.BlockedProduct(l, t)
}

// RakedProduct is BlockedProduct with each pair's order swapped, giving a
// cyclic, interleaved distribution.
func RakedProduct(l Layout, t Tiler) (Layout, error) {
	return layout.RakedProduct(l, t)
}

// ZippedProduct gathers base modes into the first top-level mode and
// replication modes into the second.
func ZippedProduct(l Layout, t Tiler) (Layout, error) {
	return layout.ZippedProduct(l, t)
}

// TiledProduct keeps the base group as the first top-level mode and each
// replication mode as its own subsequent top-level mode.
func TiledProduct(l Layout, t Tiler) (Layout, error) {
	return layout.TiledProduct(l, t)
}

// FlatProduct produces no grouping: every base mode, then every
// replication mode, each as its own top-level mode.
func FlatProduct(l Layout, t Tiler) (Layout, error) {
	return layout.FlatProduct(l, t)
}
