package shacl_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tickgraph/tickgraph/arena"
	"github.com/tickgraph/tickgraph/intern"
	"github.com/tickgraph/tickgraph/owl"
	"github.com/tickgraph/tickgraph/shacl"
	"github.com/tickgraph/tickgraph/store"
)

type fixture struct {
	st  *store.Store
	eng *owl.Engine
	in  *intern.Interner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	a, err := arena.New(1 << 22)
	require.NoError(t, err)
	in, err := intern.New(a, 256)
	require.NoError(t, err)
	st, err := store.New(a, 256, 64)
	require.NoError(t, err)
	eng, err := owl.New(a, st, 64)
	require.NoError(t, err)
	return &fixture{st: st, eng: eng, in: in}
}

// TestMinCountViolation is Scenario F: a node with fewer than the
// required distinct values for a predicate fails MinCount, and the
// validator localizes the failure to that constraint's index.
func TestMinCountViolation(t *testing.T) {
	f := newFixture(t)
	person, hasFriend := intern.NodeID(1), intern.NodeID(2)
	require.NoError(t, f.st.Add(person, hasFriend, 3))

	shape := shacl.Shape{
		TargetClass: intern.Wildcard,
		Constraints: []shacl.Constraint{
			{Kind: shacl.MinCount, Predicate: hasFriend, Count: 2},
		},
	}
	result := shacl.Validate(f.st, f.eng, f.in, shape, person)
	require.True(t, result.Applicable)
	require.False(t, result.Conformant)
	require.Equal(t, 0, result.FirstViolation)
}

func TestMinCountSatisfied(t *testing.T) {
	f := newFixture(t)
	person, hasFriend := intern.NodeID(1), intern.NodeID(2)
	require.NoError(t, f.st.Add(person, hasFriend, 3))
	require.NoError(t, f.st.Add(person, hasFriend, 4))

	shape := shacl.Shape{
		TargetClass: intern.Wildcard,
		Constraints: []shacl.Constraint{
			{Kind: shacl.MinCount, Predicate: hasFriend, Count: 2},
		},
	}
	result := shacl.Validate(f.st, f.eng, f.in, shape, person)
	require.True(t, result.Conformant)
	require.Equal(t, -1, result.FirstViolation)
}

func TestMinCountDedupesRepeatedValues(t *testing.T) {
	f := newFixture(t)
	person, hasFriend := intern.NodeID(1), intern.NodeID(2)
	require.NoError(t, f.st.Add(person, hasFriend, 3))
	require.NoError(t, f.st.Add(person, hasFriend, 3)) // duplicate value, not distinct

	shape := shacl.Shape{
		TargetClass: intern.Wildcard,
		Constraints: []shacl.Constraint{
			{Kind: shacl.MinCount, Predicate: hasFriend, Count: 2},
		},
	}
	result := shacl.Validate(f.st, f.eng, f.in, shape, person)
	require.False(t, result.Conformant)
}

func TestMaxCountViolation(t *testing.T) {
	f := newFixture(t)
	person, hasFriend := intern.NodeID(1), intern.NodeID(2)
	require.NoError(t, f.st.Add(person, hasFriend, 3))
	require.NoError(t, f.st.Add(person, hasFriend, 4))

	shape := shacl.Shape{
		TargetClass: intern.Wildcard,
		Constraints: []shacl.Constraint{
			{Kind: shacl.MaxCount, Predicate: hasFriend, Count: 1},
		},
	}
	result := shacl.Validate(f.st, f.eng, f.in, shape, person)
	require.False(t, result.Conformant)
}

func TestClassOfValueConstraint(t *testing.T) {
	f := newFixture(t)
	person, worksAt, company := intern.NodeID(1), intern.NodeID(2), intern.NodeID(3)
	organization := intern.NodeID(4)
	require.NoError(t, f.eng.AssertAxiom(owl.SubClassOf, company, organization))
	require.NoError(t, f.st.Add(person, worksAt, company))

	shape := shacl.Shape{
		TargetClass: intern.Wildcard,
		Constraints: []shacl.Constraint{
			{Kind: shacl.ClassOfValue, Predicate: worksAt, Class: organization},
		},
	}
	result := shacl.Validate(f.st, f.eng, f.in, shape, person)
	require.True(t, result.Conformant)
}

func TestNodeKindConstraint(t *testing.T) {
	f := newFixture(t)
	person, name := intern.NodeID(1), intern.NodeID(2)
	literal, err := f.in.Intern([]byte("Alice"), intern.KindLiteral)
	require.NoError(t, err)
	require.NoError(t, f.st.Add(person, name, literal))

	shape := shacl.Shape{
		TargetClass: intern.Wildcard,
		Constraints: []shacl.Constraint{
			{Kind: shacl.NodeKind, Predicate: name, WantKind: intern.KindLiteral},
		},
	}
	result := shacl.Validate(f.st, f.eng, f.in, shape, person)
	require.True(t, result.Conformant)
}

func TestHasValueConstraint(t *testing.T) {
	f := newFixture(t)
	person, status, active := intern.NodeID(1), intern.NodeID(2), intern.NodeID(3)
	require.NoError(t, f.st.Add(person, status, active))

	shape := shacl.Shape{
		TargetClass: intern.Wildcard,
		Constraints: []shacl.Constraint{
			{Kind: shacl.HasValue, Predicate: status, Value: active},
		},
	}
	result := shacl.Validate(f.st, f.eng, f.in, shape, person)
	require.True(t, result.Conformant)
}

func TestTargetClassMismatchIsTriviallyConformant(t *testing.T) {
	f := newFixture(t)
	person, typePred, human, robot := intern.NodeID(1), intern.NodeID(2), intern.NodeID(3), intern.NodeID(4)
	require.NoError(t, f.st.Add(person, typePred, human))

	shape := shacl.Shape{
		TargetClass:   robot,
		TypePredicate: typePred,
		Constraints: []shacl.Constraint{
			{Kind: shacl.MinCount, Predicate: typePred, Count: 99}, // would fail if evaluated
		},
	}
	result := shacl.Validate(f.st, f.eng, f.in, shape, person)
	require.False(t, result.Applicable)
	require.True(t, result.Conformant)
}

func TestUnknownNodeIsNotApplicable(t *testing.T) {
	f := newFixture(t)
	shape := shacl.Shape{TargetClass: intern.Wildcard}
	result := shacl.Validate(f.st, f.eng, f.in, shape, intern.NodeID(999))
	require.False(t, result.Applicable)
	require.True(t, result.Conformant)
}
