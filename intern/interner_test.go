package intern_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tickgraph/tickgraph/arena"
	"github.com/tickgraph/tickgraph/intern"
)

func newInterner(t *testing.T, maxEntities int) *intern.Interner {
	t.Helper()
	a, err := arena.New(1 << 20)
	require.NoError(t, err)
	in, err := intern.New(a, maxEntities)
	require.NoError(t, err)
	return in
}

func TestInternDeterminism(t *testing.T) {
	in := newInterner(t, 64)

	id1, err := in.Intern([]byte("alice"), intern.KindIRI)
	require.NoError(t, err)

	id2, err := in.Intern([]byte("alice"), intern.KindIRI)
	require.NoError(t, err)
	require.Equal(t, id1, id2)

	id3, err := in.Intern([]byte("bob"), intern.KindIRI)
	require.NoError(t, err)
	require.NotEqual(t, id1, id3)
}

func TestInternEmptyInput(t *testing.T) {
	in := newInterner(t, 64)
	_, err := in.Intern(nil, intern.KindIRI)
	require.ErrorIs(t, err, intern.ErrEmptyInput)
}

func TestInternRecordsKind(t *testing.T) {
	in := newInterner(t, 64)
	id, err := in.Intern([]byte("\"42\""), intern.KindLiteral)
	require.NoError(t, err)
	require.Equal(t, intern.KindLiteral, in.Kind(id))
}

func TestInternCapacityExceeded(t *testing.T) {
	in := newInterner(t, 2)
	_, err := in.Intern([]byte("a"), intern.KindIRI)
	require.NoError(t, err)
	_, err = in.Intern([]byte("b"), intern.KindIRI)
	require.NoError(t, err)
	_, err = in.Intern([]byte("c"), intern.KindIRI)
	require.ErrorIs(t, err, intern.ErrCapacityExceeded)
}

func TestInternManyNamesRoundTrip(t *testing.T) {
	in := newInterner(t, 4096)
	ids := make(map[intern.NodeID]string, 1000)
	for i := 0; i < 1000; i++ {
		name := []byte{byte(i), byte(i >> 8), 'x'}
		id, err := in.Intern(name, intern.KindIRI)
		require.NoError(t, err)
		ids[id] = string(name)
	}
	require.Equal(t, 1000, in.Count())
	for id, name := range ids {
		got, ok := in.Bytes(id)
		require.True(t, ok)
		require.Equal(t, name, string(got))
	}
}

func TestBytesUnknownID(t *testing.T) {
	in := newInterner(t, 64)
	_, ok := in.Bytes(999)
	require.False(t, ok)
}
