package owl

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tickgraph/tickgraph/arena"
	"github.com/tickgraph/tickgraph/bitmatrix"
	"github.com/tickgraph/tickgraph/cycle"
	"github.com/tickgraph/tickgraph/intern"
	"github.com/tickgraph/tickgraph/store"
)

// Engine holds the axiom list and the three bit-matrices that back
// OWL-subset reasoning. ClassHierarchy is MaxEntities wide
// on the direct-relation columns and a further MaxEntities wide on
// the disjoint-with columns; TransitiveClosure is MaxEntities square,
// and PropertyFlags is MaxEntities rows by four columns, one per
// characteristic.
type Engine struct {
	store       *store.Store
	maxEntities int

	classHierarchy    *bitmatrix.BitMatrix
	transitiveClosure *bitmatrix.BitMatrix
	propertyFlags     *bitmatrix.BitMatrix

	axioms       []Axiom
	axiomMaxSeen int
	materialized bool
}

// New constructs an Engine bound to st, with bit-matrices sized for
// maxEntities distinct entity ids. Matrix storage is charged against
// ar.
func New(ar *arena.Arena, st *store.Store, maxEntities int) (*Engine, error) {
	classHierarchy, err := bitmatrix.New(maxEntities, 2*maxEntities, ar)
	if err != nil {
		return nil, fmt.Errorf("owl: class hierarchy matrix: %w", err)
	}
	transitiveClosure, err := bitmatrix.New(maxEntities, maxEntities, ar)
	if err != nil {
		return nil, fmt.Errorf("owl: transitive closure matrix: %w", err)
	}
	propertyFlags, err := bitmatrix.New(maxEntities, 4, ar)
	if err != nil {
		return nil, fmt.Errorf("owl: property flags matrix: %w", err)
	}

	return &Engine{
		store:             st,
		maxEntities:       maxEntities,
		classHierarchy:    classHierarchy,
		transitiveClosure: transitiveClosure,
		propertyFlags:     propertyFlags,
	}, nil
}

func (e *Engine) observe(ids ...intern.NodeID) error {
	for _, id := range ids {
		if int(id) >= e.maxEntities {
			return ErrEntityOutOfRange
		}
		if int(id)+1 > e.axiomMaxSeen {
			e.axiomMaxSeen = int(id) + 1
		}
	}
	return nil
}

// AssertAxiom records axiom (subject, object, kind) in the axiom list
// and, for kinds with a direct bit-matrix encoding, applies it
// immediately. Domain/Range/InverseOf/SameAs/DifferentFrom are
// recorded only; they have no defined matrix semantics here.
func (e *Engine) AssertAxiom(kind AxiomKind, subject, object intern.NodeID) error {
	if kind > DifferentFrom {
		return ErrUnknownAxiomKind
	}
	if kind.classRelation() {
		if err := e.observe(subject, object); err != nil {
			return err
		}
	} else {
		if err := e.observe(subject); err != nil {
			return err
		}
	}

	if err := e.applyAxiom(Axiom{Subject: subject, Object: object, Kind: kind}); err != nil {
		return err
	}

	e.axioms = append(e.axioms, Axiom{Subject: subject, Object: object, Kind: kind})
	return nil
}

// applyAxiom sets the bit-matrix cells implied by ax, for kinds with a
// direct encoding. It is idempotent, so it doubles as the reseed step
// Materialize runs over the full axiom list after a reset clears the
// matrices.
func (e *Engine) applyAxiom(ax Axiom) error {
	subject, object := ax.Subject, ax.Object
	switch ax.Kind {
	case SubClassOf:
		if err := e.classHierarchy.Set(int(subject), int(object)); err != nil {
			return fmt.Errorf("owl: assert SubClassOf: %w", err)
		}
	case EquivalentClass:
		if err := e.classHierarchy.Set(int(subject), int(object)); err != nil {
			return fmt.Errorf("owl: assert EquivalentClass: %w", err)
		}
		if err := e.classHierarchy.Set(int(object), int(subject)); err != nil {
			return fmt.Errorf("owl: assert EquivalentClass: %w", err)
		}
	case DisjointWith:
		if err := e.classHierarchy.Set(int(subject), int(object)+e.maxEntities); err != nil {
			return fmt.Errorf("owl: assert DisjointWith: %w", err)
		}
		if err := e.classHierarchy.Set(int(object), int(subject)+e.maxEntities); err != nil {
			return fmt.Errorf("owl: assert DisjointWith: %w", err)
		}
	case Transitive:
		if err := e.propertyFlags.Set(int(subject), int(FlagTransitive)); err != nil {
			return fmt.Errorf("owl: assert Transitive: %w", err)
		}
	case Symmetric:
		if err := e.propertyFlags.Set(int(subject), int(FlagSymmetric)); err != nil {
			return fmt.Errorf("owl: assert Symmetric: %w", err)
		}
	case Functional:
		if err := e.propertyFlags.Set(int(subject), int(FlagFunctional)); err != nil {
			return fmt.Errorf("owl: assert Functional: %w", err)
		}
	case InverseFunctional:
		if err := e.propertyFlags.Set(int(subject), int(FlagInverseFunctional)); err != nil {
			return fmt.Errorf("owl: assert InverseFunctional: %w", err)
		}
	}
	return nil
}

// Axioms returns the ordered list of every axiom asserted so far.
func (e *Engine) Axioms() []Axiom {
	return e.axioms
}

// IsSubclassOf reports whether c is a subclass of (or equivalent to,
// or transitively beneath, once materialized) d.
func (e *Engine) IsSubclassOf(c, d intern.NodeID) bool {
	ok, err := e.classHierarchy.Test(int(c), int(d))
	return err == nil && ok
}

// IsEquivalent reports whether a and b are mutually subclass-related.
func (e *Engine) IsEquivalent(a, b intern.NodeID) bool {
	return e.IsSubclassOf(a, b) && e.IsSubclassOf(b, a)
}

// IsDisjointWith reports whether a and b were asserted, or inferred
// through the class hierarchy, to be disjoint.
func (e *Engine) IsDisjointWith(a, b intern.NodeID) bool {
	ok, err := e.classHierarchy.Test(int(a), int(b)+e.maxEntities)
	return err == nil && ok
}

// HasPropertyCharacteristic reports whether property p carries the
// given characteristic flag.
func (e *Engine) HasPropertyCharacteristic(p intern.NodeID, kind PropertyCharacteristic) bool {
	ok, err := e.propertyFlags.Test(int(p), int(kind))
	return err == nil && ok
}

// TransitiveAsk reports whether o is reachable from s along edges
// labeled p, requiring p to carry the Transitive characteristic.
// Before Materialize has run, it falls back to a direct-edge check and
// a depth-one chain check. Once Materialize has run, it reads the one
// TransitiveClosure matrix that every transitive property shares, so a
// path along edges of a different transitive property also counts.
func (e *Engine) TransitiveAsk(s, p, o intern.NodeID) bool {
	if !e.HasPropertyCharacteristic(p, FlagTransitive) {
		return false
	}
	if e.materialized {
		ok, err := e.transitiveClosure.Test(int(s), int(o))
		return err == nil && ok
	}
	if e.store.Ask(s, p, o) {
		return true
	}
	for _, edge := range e.store.SubjectAdjacency(s) {
		if edge.Predicate == p && e.store.Ask(edge.Object, p, o) {
			return true
		}
	}
	return false
}

// Materialize computes the reflexive-transitive closure of the class
// hierarchy over ids below one past the largest axiom id and, for
// every property asserted Transitive, seeds and closes
// TransitiveClosure from the Triple Store's direct edges.
// reset clears all three matrices to their zero state before
// recomputing; otherwise prior materializations are preserved and
// extended. Materialize is a batch operation outside the cycle-budget
// contract; Cycles in the returned report records its own elapsed cost
// for callers that want to track it separately.
func (e *Engine) Materialize(reset bool) (MaterializationReport, error) {
	start := cycle.Now()

	if reset {
		e.classHierarchy.ClearAll()
		e.transitiveClosure.ClearAll()
		e.propertyFlags.ClearAll()
	}

	// Step 2: reseed from the full axiom list. AssertAxiom already
	// applied each axiom when it was asserted, so this is a no-op
	// unless reset cleared the matrices above; applyAxiom is
	// idempotent either way.
	for _, ax := range e.axioms {
		if err := e.applyAxiom(ax); err != nil {
			return MaterializationReport{}, fmt.Errorf("owl: materialize reseed: %w", err)
		}
	}

	maxEntity := e.axiomMaxSeen
	if maxEntity > e.maxEntities {
		maxEntity = e.maxEntities
	}

	inferences := 0

	for i := 0; i < maxEntity; i++ {
		already, err := e.classHierarchy.Test(i, i)
		if err != nil {
			return MaterializationReport{}, fmt.Errorf("owl: materialize class hierarchy: %w", err)
		}
		if !already {
			if err := e.classHierarchy.Set(i, i); err != nil {
				return MaterializationReport{}, fmt.Errorf("owl: materialize class hierarchy: %w", err)
			}
			inferences++
		}
	}

	for k := 0; k < maxEntity; k++ {
		for i := 0; i < maxEntity; i++ {
			set, err := e.classHierarchy.Test(i, k)
			if err != nil {
				return MaterializationReport{}, fmt.Errorf("owl: materialize class hierarchy: %w", err)
			}
			if !set {
				continue
			}
			newly, err := e.classHierarchy.UnionRowInto(i, k)
			if err != nil {
				return MaterializationReport{}, fmt.Errorf("owl: materialize class hierarchy: %w", err)
			}
			inferences += newly
		}
	}

	transitiveProps := make([]intern.NodeID, 0, 4)
	for p := 0; p < maxEntity; p++ {
		if e.HasPropertyCharacteristic(intern.NodeID(p), FlagTransitive) {
			transitiveProps = append(transitiveProps, intern.NodeID(p))
		}
	}

	for _, p := range transitiveProps {
		e.store.ForEachWithPredicate(p, func(subject, object intern.NodeID) {
			if int(subject) >= maxEntity || int(object) >= maxEntity {
				return
			}
			already, _ := e.transitiveClosure.Test(int(subject), int(object))
			if !already {
				if err := e.transitiveClosure.Set(int(subject), int(object)); err == nil {
					inferences++
				}
			}
		})
	}

	for k := 0; k < maxEntity; k++ {
		for i := 0; i < maxEntity; i++ {
			set, err := e.transitiveClosure.Test(i, k)
			if err != nil {
				return MaterializationReport{}, fmt.Errorf("owl: materialize transitive closure: %w", err)
			}
			if !set {
				continue
			}
			newly, err := e.transitiveClosure.UnionRowInto(i, k)
			if err != nil {
				return MaterializationReport{}, fmt.Errorf("owl: materialize transitive closure: %w", err)
			}
			inferences += newly
		}
	}

	e.materialized = true

	return MaterializationReport{
		ID:             uuid.NewString(),
		InferenceCount: inferences,
		Cycles:         cycle.Now() - start,
	}, nil
}
