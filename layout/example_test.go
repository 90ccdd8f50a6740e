// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layout_test

import (
	"fmt"

	"github.com/loom-ml/loom/layout"
)

func ExampleMakeLayoutPacked() {
	l := layout.MakeLayoutPacked(layout.Ints(4, 8))
	fmt.Println(l)
	// Output: (4,8):(1,4)
}

func ExampleLayout_At() {
	l, _ := layout.MakeLayout(layout.Ints(4, 2), layout.Ints(2, 1))
	idx, _ := l.At(5)
	fmt.Println(idx)
	// Output: 3
}

func ExampleCoalesce() {
	l, _ := layout.MakeLayout(
		layout.Tuple(layout.Ints(2), layout.Ints(1, 6)),
		layout.Tuple(layout.Ints(1), layout.Ints(6, 2)),
	)
	fmt.Println(layout.Coalesce(l))
	// Output: 12:1
}

func ExampleCompose() {
	a, _ := layout.MakeLayout(layout.Ints(6, 2), layout.Ints(8, 2))
	b, _ := layout.MakeLayout(layout.Ints(4, 3), layout.Ints(3, 1))
	r, _ := layout.Compose(a, b)
	fmt.Println(r)
	// Output: ((2,2),3):((24,2),8)
}

func ExampleLogicalDivide() {
	l, _ := layout.MakeLayout(layout.Ints(4, 2, 3), layout.Ints(2, 1, 8))
	t, _ := layout.MakeLayout(layout.Ints(4), layout.Ints(2))
	d, _ := layout.LogicalDivide(l, layout.TileOf(t))
	fmt.Println(d)
	// Output: ((2,2),(2,3)):((4,1),(2,8))
}

func ExampleLogicalProduct() {
	l, _ := layout.MakeLayout(layout.Ints(2, 2), layout.Ints(4, 1))
	t, _ := layout.MakeLayout(layout.Ints(6), layout.Ints(1))
	p, _ := layout.LogicalProduct(l, layout.TileOf(t))
	fmt.Println(p)
	// Output: ((2,2),(2,3)):((4,1),(2,8))
}

func ExampleD() {
	// Dynamic extents render as "?" and stay opaque to simplification.
	l, _ := layout.MakeLayout(
		layout.Tuple(layout.Leaf(layout.D(2)), layout.Leaf(layout.S(3))),
		layout.Tuple(layout.Leaf(layout.S(1)), layout.Leaf(layout.D(2))),
	)
	fmt.Println(layout.Coalesce(l))
	// Output: (?,3):(1,?)
}
