package bitmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tickgraph/tickgraph/arena"
	"github.com/tickgraph/tickgraph/bitmatrix"
)

func newMatrix(t *testing.T, rows, cols int) *bitmatrix.BitMatrix {
	t.Helper()
	a, err := arena.New(1 << 20)
	require.NoError(t, err)
	m, err := bitmatrix.New(rows, cols, a)
	require.NoError(t, err)
	return m
}

func TestSetTest(t *testing.T) {
	m := newMatrix(t, 8, 8)

	ok, err := m.Test(3, 5)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set(3, 5))
	ok, err = m.Test(3, 5)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestOutOfBounds(t *testing.T) {
	m := newMatrix(t, 4, 4)
	require.ErrorIs(t, m.Set(4, 0), bitmatrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1), bitmatrix.ErrIndexOutOfBounds)
	_, err := m.Test(10, 0)
	require.ErrorIs(t, err, bitmatrix.ErrIndexOutOfBounds)
}

func TestUnionRowInto(t *testing.T) {
	m := newMatrix(t, 4, 130) // spans 3 words/row
	require.NoError(t, m.Set(0, 1))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(1, 64))
	require.NoError(t, m.Set(1, 129))

	newly, err := m.UnionRowInto(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, newly) // bit 64 and bit 129 are new to row 0; bit 1 already set

	ok, _ := m.Test(0, 64)
	require.True(t, ok)
	ok, _ = m.Test(0, 129)
	require.True(t, ok)
	ok, _ = m.Test(0, 1)
	require.True(t, ok)
}

func TestPopcountRow(t *testing.T) {
	m := newMatrix(t, 2, 70)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(0, 69))
	require.NoError(t, m.Set(0, 33))

	n, err := m.PopcountRow(0)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = m.PopcountRow(1)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestNewInvalidDimensions(t *testing.T) {
	a, err := arena.New(1 << 10)
	require.NoError(t, err)
	_, err = bitmatrix.New(0, 4, a)
	require.ErrorIs(t, err, bitmatrix.ErrInvalidDimensions)
}

func TestNewExhaustsArena(t *testing.T) {
	a, err := arena.New(8) // room for exactly one word
	require.NoError(t, err)
	_, err = bitmatrix.New(4, 64, a) // needs 4 words = 32 bytes
	require.ErrorIs(t, err, arena.ErrOutOfArena)
}
