package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntStaticDynamic(t *testing.T) {
	s := S(4)
	d := D(4)

	assert.True(t, s.IsStatic())
	assert.False(t, s.IsDynamic())
	assert.True(t, d.IsDynamic())
	assert.Equal(t, 4, s.Value())
	assert.Equal(t, 4, d.Value())
}

func TestIntProofs(t *testing.T) {
	assert.True(t, S(1).ProvablyOne())
	assert.False(t, D(1).ProvablyOne(), "a dynamic 1 is not provably 1")
	assert.True(t, S(0).ProvablyZero())
	assert.False(t, D(0).ProvablyZero())
	assert.True(t, S(3).ProvablyEqual(S(3)))
	assert.False(t, S(3).ProvablyEqual(D(3)), "dynamic values are never provably equal")
	assert.False(t, D(3).ProvablyEqual(D(3)))
}

func TestIntArithmetic(t *testing.T) {
	assert.Equal(t, 12, S(3).Mul(S(4)).Value())
	assert.True(t, S(3).Mul(S(4)).IsStatic())
	assert.True(t, S(3).Mul(D(4)).IsDynamic(), "dynamic is contagious")
	assert.Equal(t, 7, S(3).Add(S(4)).Value())

	assert.Equal(t, 2, minInt(S(2), S(5)).Value())
	assert.True(t, minInt(S(2), D(5)).IsDynamic())
	assert.True(t, minInt(S(1), D(5)).IsStatic(), "a static 1 is the minimum for any extent")
}

func TestExactDivStatic(t *testing.T) {
	q, err := exactDiv(S(12), S(3), divDivision)
	require.NoError(t, err)
	assert.Equal(t, 4, q.Value())
	assert.True(t, q.IsStatic())

	_, err = exactDiv(S(10), S(3), divDivision)
	require.ErrorIs(t, err, ErrDivisionDivisibility)

	_, err = exactDiv(S(10), S(3), divComposition)
	require.ErrorIs(t, err, ErrCompositionDivisibility)

	_, err = exactDiv(S(10), S(0), divDivision)
	require.ErrorIs(t, err, ErrDivisionDivisibility)
}

func TestExactDivDeferred(t *testing.T) {
	// A dynamic dividend defers the check instead of failing.
	q, err := exactDiv(D(12), S(3), divDivision)
	require.NoError(t, err)
	assert.Equal(t, 4, q.Value())
	assert.True(t, q.IsDynamic())
	assert.NoError(t, q.validate())

	q, err = exactDiv(D(10), S(3), divDivision)
	require.NoError(t, err)
	require.ErrorIs(t, q.validate(), ErrDivisionDivisibility)
}

func TestShapeDivStatic(t *testing.T) {
	q, err := shapeDiv(S(6), S(3), divComposition)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Value())

	// The divisor consumes the whole extent.
	q, err = shapeDiv(S(3), S(6), divComposition)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Value())

	_, err = shapeDiv(S(4), S(6), divComposition)
	require.ErrorIs(t, err, ErrCompositionDivisibility)
}

func TestShapeDivDeferred(t *testing.T) {
	q, err := shapeDiv(D(6), S(3), divComposition)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Value())
	assert.NoError(t, q.validate())

	// Neither direction divides: the obligation is recorded and only
	// fails when validated.
	q, err = shapeDiv(D(4), S(6), divComposition)
	require.NoError(t, err)
	require.ErrorIs(t, q.validate(), ErrCompositionDivisibility)
}

func TestIntString(t *testing.T) {
	assert.Equal(t, "4", S(4).String())
	assert.Equal(t, "?", D(4).String())

	q, err := exactDiv(D(12), S(3), divDivision)
	require.NoError(t, err)
	assert.Equal(t, "?{div=3}", q.String())
}
