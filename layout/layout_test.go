// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/layout"
)

func TestFacadeRoundTrip(t *testing.T) {
	l, err := layout.MakeLayout(layout.Ints(4, 2, 3), layout.Ints(2, 1, 8))
	require.NoError(t, err)
	tile, err := layout.MakeLayout(layout.Ints(4), layout.Ints(2))
	require.NoError(t, err)

	d, err := layout.LogicalDivide(l, layout.TileOf(tile))
	require.NoError(t, err)
	assert.Equal(t, "((2,2),(2,3)):((4,1),(2,8))", d.String())
	assert.Equal(t, l.Size().Value(), d.Size().Value())
}

func TestFacadeSentinels(t *testing.T) {
	_, err := layout.MakeLayout(layout.Ints(2, 3), layout.Ints(1))
	assert.ErrorIs(t, err, layout.ErrShapeStrideMismatch)

	l := layout.MakeLayoutPacked(layout.Ints(6))
	_, err = l.At(6)
	assert.ErrorIs(t, err, layout.ErrCoordinateOutOfRange)

	tile, err := layout.MakeLayout(layout.Ints(4), layout.Ints(1))
	require.NoError(t, err)
	_, err = layout.LogicalDivide(l, layout.TileOf(tile))
	assert.ErrorIs(t, err, layout.ErrDivisionDivisibility)
}
