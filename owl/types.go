package owl

import "github.com/tickgraph/tickgraph/intern"

// AxiomKind enumerates the OWL axiom forms the engine accepts.
type AxiomKind uint8

const (
	SubClassOf AxiomKind = iota
	EquivalentClass
	DisjointWith
	Transitive
	Symmetric
	Functional
	InverseFunctional
	Domain
	Range
	InverseOf
	SameAs
	DifferentFrom
)

func (k AxiomKind) String() string {
	switch k {
	case SubClassOf:
		return "SubClassOf"
	case EquivalentClass:
		return "EquivalentClass"
	case DisjointWith:
		return "DisjointWith"
	case Transitive:
		return "Transitive"
	case Symmetric:
		return "Symmetric"
	case Functional:
		return "Functional"
	case InverseFunctional:
		return "InverseFunctional"
	case Domain:
		return "Domain"
	case Range:
		return "Range"
	case InverseOf:
		return "InverseOf"
	case SameAs:
		return "SameAs"
	case DifferentFrom:
		return "DifferentFrom"
	default:
		return "Unknown"
	}
}

// classRelation reports whether k consumes both Subject and Object
// (a binary class/individual relation) as opposed to a
// property-characteristic kind that consumes only Subject.
func (k AxiomKind) classRelation() bool {
	switch k {
	case SubClassOf, EquivalentClass, DisjointWith, Domain, Range, InverseOf, SameAs, DifferentFrom:
		return true
	default:
		return false
	}
}

// PropertyCharacteristic identifies one of the four flag bits stored
// per property in PropertyFlags.
type PropertyCharacteristic uint8

const (
	FlagTransitive PropertyCharacteristic = iota
	FlagSymmetric
	FlagFunctional
	FlagInverseFunctional
)

// Axiom is one asserted statement: subject and object are interned
// NodeIds (Object is unused, left zero, for property-characteristic
// kinds). Appended to the axiom list on assert; consumed again, in
// full, by Materialize.
type Axiom struct {
	Subject intern.NodeID
	Object  intern.NodeID
	Kind    AxiomKind
}

// MaterializationReport summarizes one Materialize call: how many
// bits were newly set across seeding and closure (inferences), and
// how many cycles the batch operation consumed. ID distinguishes
// reports across repeated calls for callers that log or compare them.
type MaterializationReport struct {
	ID             string
	InferenceCount int
	Cycles         uint64
}
