package shacl

import "github.com/tickgraph/tickgraph/intern"

// ConstraintKind enumerates the five constraint forms a Shape may
// carry.
type ConstraintKind uint8

const (
	MinCount ConstraintKind = iota
	MaxCount
	ClassOfValue
	NodeKind
	HasValue
)

// Constraint is one property constraint within a Shape. Fields not
// meaningful to Kind are left zero; this flat layout (rather than a
// tagged interface per kind) keeps evaluation allocation-free.
type Constraint struct {
	Kind ConstraintKind

	Predicate intern.NodeID

	// Count is the threshold for MinCount/MaxCount.
	Count int

	// Class is the target class for ClassOfValue.
	Class intern.NodeID

	// WantKind is the required intern.Kind for NodeKind.
	WantKind intern.Kind

	// Value is the required object for HasValue.
	Value intern.NodeID
}

// Shape is a compiled set of property constraints over an optional
// target class. TargetClass is intern.Wildcard when the
// shape applies regardless of declared class. TypePredicate is the
// interned predicate the validator scans a node's adjacency for to
// resolve its declared class (see DESIGN.md for why this field exists
// alongside TargetClass).
type Shape struct {
	TargetClass   intern.NodeID
	TypePredicate intern.NodeID
	Constraints   []Constraint
}

// ValidationResult reports whether a shape was applicable to a node
// and, if applicable, whether it conformed. FirstViolation is
// the index into Shape.Constraints of the first failing constraint,
// or -1 if none failed — a plain int rather than a pointer so the
// evaluation path allocates nothing.
type ValidationResult struct {
	Applicable     bool
	Conformant     bool
	FirstViolation int
}
