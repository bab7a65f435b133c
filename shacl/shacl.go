package shacl

import (
	"github.com/tickgraph/tickgraph/intern"
	"github.com/tickgraph/tickgraph/owl"
	"github.com/tickgraph/tickgraph/store"
)

// notApplicable is the shared, trivially-conformant result for every
// path where the shape does not apply to the node in question.
var notApplicable = ValidationResult{Applicable: false, Conformant: true, FirstViolation: -1}

// Validate evaluates shape against node, consulting st for
// presence/count and in/eng for kind and class-of-value checks.
// A node id that appears in no stored triple, or whose declared class
// is neither the target class nor a subclass of it, yields a
// Not-Applicable result rather than an error:
// Validate itself never fails.
//
// Complexity: O(len(Constraints) * degree(node)^2) in the worst case,
// from the distinct-value scan backing MinCount/MaxCount; zero heap
// allocation throughout.
func Validate(st *store.Store, eng *owl.Engine, in *intern.Interner, shape Shape, node intern.NodeID) ValidationResult {
	if !st.HasNode(node) {
		return notApplicable
	}

	adjacency := st.SubjectAdjacency(node)

	if shape.TargetClass != intern.Wildcard {
		class, ok := declaredClass(adjacency, shape.TypePredicate)
		if !ok || (class != shape.TargetClass && !eng.IsSubclassOf(class, shape.TargetClass)) {
			return notApplicable
		}
	}

	for i, c := range shape.Constraints {
		if !evaluate(adjacency, eng, in, c) {
			return ValidationResult{Applicable: true, Conformant: false, FirstViolation: i}
		}
	}

	return ValidationResult{Applicable: true, Conformant: true, FirstViolation: -1}
}

// declaredClass scans adjacency for the first edge whose predicate is
// typePredicate and returns its object as the node's declared class.
func declaredClass(adjacency []store.Edge, typePredicate intern.NodeID) (intern.NodeID, bool) {
	for _, e := range adjacency {
		if e.Predicate == typePredicate {
			return e.Object, true
		}
	}
	return 0, false
}

func evaluate(adjacency []store.Edge, eng *owl.Engine, in *intern.Interner, c Constraint) bool {
	switch c.Kind {
	case MinCount:
		return distinctCount(adjacency, c.Predicate) >= c.Count
	case MaxCount:
		return distinctCount(adjacency, c.Predicate) <= c.Count
	case ClassOfValue:
		for _, e := range adjacency {
			if e.Predicate == c.Predicate && !eng.IsSubclassOf(e.Object, c.Class) {
				return false
			}
		}
		return true
	case NodeKind:
		for _, e := range adjacency {
			if e.Predicate == c.Predicate && in.Kind(e.Object) != c.WantKind {
				return false
			}
		}
		return true
	case HasValue:
		for _, e := range adjacency {
			if e.Predicate == c.Predicate && e.Object == c.Value {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// distinctCount counts distinct objects among adjacency entries whose
// predicate is p, via an O(d^2) nested scan rather than a map, so the
// validate path stays allocation-free.
func distinctCount(adjacency []store.Edge, p intern.NodeID) int {
	count := 0
	for i, e := range adjacency {
		if e.Predicate != p {
			continue
		}
		first := true
		for j := 0; j < i; j++ {
			if adjacency[j].Predicate == p && adjacency[j].Object == e.Object {
				first = false
				break
			}
		}
		if first {
			count++
		}
	}
	return count
}
