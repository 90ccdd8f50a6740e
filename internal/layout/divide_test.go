package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogicalDivide(t *testing.T) {
	l, err := MakeLayout(Ints(4, 2, 3), Ints(2, 1, 8))
	require.NoError(t, err)
	tl, err := MakeLayout(Ints(4), Ints(2))
	require.NoError(t, err)

	d, err := LogicalDivide(l, TileOf(tl))
	require.NoError(t, err)
	assert.Equal(t, "((2,2),(2,3)):((4,1),(2,8))", d.String())
	assert.Equal(t, l.Size().Value(), d.Size().Value(), "dividing preserves size")
}

func TestLogicalDivideByMode(t *testing.T) {
	l, err := MakeLayout(
		Tuple(Ints(9), Ints(4, 8)),
		Tuple(Ints(59), Ints(13, 1)),
	)
	require.NoError(t, err)
	t0, err := MakeLayout(Ints(3), Ints(3))
	require.NoError(t, err)
	t1, err := MakeLayout(Ints(2, 4), Ints(1, 8))
	require.NoError(t, err)
	tiler := Tile(TileOf(t0), TileOf(t1))

	d, err := LogicalDivide(l, tiler)
	require.NoError(t, err)
	assert.Equal(t, "((3,3),((2,4),(2,2))):((177,59),((13,2),(26,1)))", d.String())
}

func TestDivideVariants(t *testing.T) {
	l, err := MakeLayout(
		Tuple(Ints(9), Ints(4, 8)),
		Tuple(Ints(59), Ints(13, 1)),
	)
	require.NoError(t, err)
	t0, err := MakeLayout(Ints(3), Ints(3))
	require.NoError(t, err)
	t1, err := MakeLayout(Ints(2, 4), Ints(1, 8))
	require.NoError(t, err)
	tiler := Tile(TileOf(t0), TileOf(t1))

	z, err := ZippedDivide(l, tiler)
	require.NoError(t, err)
	assert.Equal(t, "((3,(2,4)),(3,(2,2))):((177,(13,2)),(59,(26,1)))", z.String())

	td, err := TiledDivide(l, tiler)
	require.NoError(t, err)
	assert.Equal(t, "((3,(2,4)),3,(2,2)):((177,(13,2)),59,(26,1))", td.String())

	f, err := FlatDivide(l, tiler)
	require.NoError(t, err)
	assert.Equal(t, "(3,(2,4),3,(2,2)):(177,(13,2),59,(26,1))", f.String())

	// The variants are regroupings of the same modes: the flattened leaf
	// sequences match, so they agree at every index.
	zs := z.Shape().Flatten()
	for _, v := range []Layout{td, f} {
		vs := v.Shape().Flatten()
		require.Len(t, vs, len(zs))
		for k := range zs {
			assert.Equal(t, zs[k].Value(), vs[k].Value())
		}
	}
	for i := 0; i < 288; i++ {
		want, err := z.At(i)
		require.NoError(t, err)
		for _, v := range []Layout{td, f} {
			got, err := v.At(i)
			require.NoError(t, err)
			assert.Equal(t, want.Value(), got.Value(), "index %d", i)
		}
	}
}

func TestDividePassThrough(t *testing.T) {
	l, err := MakeLayout(Ints(6, 4), Ints(1, 6))
	require.NoError(t, err)
	tl, err := MakeLayout(Ints(2), Ints(1))
	require.NoError(t, err)
	tiler := Tile(TileOf(tl))

	d, err := LogicalDivide(l, tiler)
	require.NoError(t, err)
	assert.Equal(t, "((2,3),4):((1,2),6)", d.String())

	z, err := ZippedDivide(l, tiler)
	require.NoError(t, err)
	assert.Equal(t, "((2),(3,4)):((1),(2,6))", z.String())

	f, err := FlatDivide(l, tiler)
	require.NoError(t, err)
	assert.Equal(t, "(2,3,4):(1,2,6)", f.String())
}

func TestDivideDivisibilityFailure(t *testing.T) {
	l := MakeLayoutPacked(Ints(6))
	tl, err := MakeLayout(Ints(4), Ints(1))
	require.NoError(t, err)
	_, err = LogicalDivide(l, TileOf(tl))
	assert.ErrorIs(t, err, ErrDivisionDivisibility)
}

func TestDivideDeferred(t *testing.T) {
	tl, err := MakeLayout(Ints(3), Ints(1))
	require.NoError(t, err)

	// Divisible at run time: the divide succeeds and evaluates like the
	// identity layout it splits.
	l, err := MakeLayout(Leaf(D(12)), Leaf(D(1)))
	require.NoError(t, err)
	d, err := LogicalDivide(l, TileOf(tl))
	require.NoError(t, err)
	assert.Equal(t, 12, d.Size().Value())
	for i := 0; i < 12; i++ {
		got, err := d.At(i)
		require.NoError(t, err)
		assert.Equal(t, i, got.Value(), "index %d", i)
		assert.True(t, got.IsDynamic())
	}

	// Not divisible: the operation still succeeds, but the deferred
	// obligation fails at evaluation with the divide sentinel.
	l, err = MakeLayout(Leaf(D(10)), Leaf(D(1)))
	require.NoError(t, err)
	d, err = LogicalDivide(l, TileOf(tl))
	require.NoError(t, err)
	_, err = d.At(0)
	assert.ErrorIs(t, err, ErrDivisionDivisibility)
}
