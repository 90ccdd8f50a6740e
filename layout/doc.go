// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout provides the public API for the Loom layout algebra: a
// representation of multi-dimensional, hierarchically nested index spaces
// (shapes and strides) and the composable operations over them used to
// build tensor-core kernels.
//
// # Overview
//
// A Layout is a pair of congruent nested integer tuples, Shape and Stride,
// defining a function from a coordinate domain to a linear index. Each leaf
// value is either static (known when the layout is built, available to
// simplification) or dynamic (a runtime value the algebra must treat as
// opaque, so results stay correct for every value the host could supply).
//
// Four operation families transform layouts:
//   - Coalesce: merge adjacent stride-compatible modes without changing the
//     layout as a function.
//   - Compose: functional composition, Compose(A, B)(c) == A(B(c)).
//   - Divide: split a layout into tile and rest components along a Tiler,
//     with logical/zipped/tiled/flat presentations.
//   - Product: replicate a layout across a larger index space, with
//     logical/blocked/raked/zipped/tiled/flat presentations.
//
// # Basic Usage
//
//	import "github.com/loom-ml/loom/layout"
//
//	func main() {
//	    // A 4x8 column-major matrix.
//	    m := layout.MakeLayoutPacked(layout.Ints(4, 8))
//
//	    // Split it into 2x2 tiles, one tiler entry per mode.
//	    two := layout.MakeLayoutPacked(layout.Ints(2))
//	    tiled, err := layout.ZippedDivide(m, layout.Tile(layout.TileOf(two), layout.TileOf(two)))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(tiled) // ((2,2),(2,4)):((1,4),(2,8))
//	}
//
// All values are immutable and every operation is pure: inputs are never
// modified and distinct calls never interfere, so the package is safe for
// unrestricted concurrent use.
package layout
