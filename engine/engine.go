package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tickgraph/tickgraph/arena"
	"github.com/tickgraph/tickgraph/cycle"
	"github.com/tickgraph/tickgraph/intern"
	"github.com/tickgraph/tickgraph/owl"
	"github.com/tickgraph/tickgraph/shacl"
	"github.com/tickgraph/tickgraph/store"
)

// Engine is the core façade: it owns an Arena, an Interner, a Store,
// and an OWL Engine, and exposes a small, stable surface. Cross-
// component calls are direct method calls — there is no dynamic
// dispatch on the hot path.
type Engine struct {
	cfg Config

	arena    *arena.Arena
	interner *intern.Interner
	store    *store.Store
	owl      *owl.Engine
	logger   *zap.Logger
}

// New constructs an Engine per the resolved Config. Triple and node
// capacities are rounded up to the next power of two >= 16.
func New(opts ...Option) (*Engine, error) {
	cfg := gatherOptions(opts...)

	a, err := arena.New(cfg.arenaCapacity)
	if err != nil {
		return nil, fmt.Errorf("engine: arena: %w", err)
	}
	in, err := intern.New(a, cfg.maxEntities)
	if err != nil {
		return nil, fmt.Errorf("engine: interner: %w", err)
	}
	st, err := store.New(a, cfg.tripleCapacity, cfg.nodeCapacity)
	if err != nil {
		return nil, fmt.Errorf("engine: store: %w", err)
	}
	owlEngine, err := owl.New(a, st, cfg.maxEntities)
	if err != nil {
		return nil, fmt.Errorf("engine: owl: %w", err)
	}

	return &Engine{
		cfg:      cfg,
		arena:    a,
		interner: in,
		store:    st,
		owl:      owlEngine,
		logger:   cfg.logger,
	}, nil
}

// checkBudget measures nothing itself; it classifies an already-
// measured elapsed cycle count against budget and, on overrun, logs
// and returns a *CycleBudgetError. A nil return means within budget.
func (e *Engine) checkBudget(budget cycle.Budget, operation string, elapsed uint64) *CycleBudgetError {
	if !budget.Exceeded(elapsed) {
		return nil
	}
	e.logger.Warn("cycle budget exceeded",
		zap.String("operation", operation),
		zap.Uint64("elapsed", elapsed),
		zap.Uint64("budget", budget.Cycles),
	)
	return &CycleBudgetError{Operation: operation, Elapsed: elapsed, Budget: budget.Cycles}
}

// Intern deduplicates name into a stable NodeID. Not itself
// cycle-budgeted: interning touches the Arena and is an add-adjacent,
// not ask-adjacent, path.
func (e *Engine) Intern(name []byte, kind intern.Kind) (intern.NodeID, error) {
	return e.interner.Intern(name, kind)
}

// Add appends (s,p,o) to the Triple Store. On a budget
// overrun under HardFail, the store mutation has already happened —
// Add does not and cannot undo a successful write merely because it
// was slow; only the reported error reflects the overrun.
func (e *Engine) Add(s, p, o intern.NodeID) error {
	start := cycle.Now()
	storeErr := e.store.Add(s, p, o)
	elapsed := cycle.Now() - start

	if cbErr := e.checkBudget(e.cfg.addBudget, "add", elapsed); cbErr != nil {
		if e.cfg.addBudget.Policy == cycle.HardFail {
			return cbErr
		}
		if storeErr != nil {
			return storeErr
		}
		return cbErr
	}
	return storeErr
}

// Ask reports whether (s,p,o) exists. The boolean result is
// always the true computed answer; a non-nil error under SoftReport
// only signals a budget overrun, never a wrong answer. Under HardFail
// an overrun discards the result (returns false) alongside the error.
func (e *Engine) Ask(s, p, o intern.NodeID) (bool, error) {
	start := cycle.Now()
	result := e.store.Ask(s, p, o)
	elapsed := cycle.Now() - start

	if cbErr := e.checkBudget(e.cfg.askBudget, "ask", elapsed); cbErr != nil {
		if e.cfg.askBudget.Policy == cycle.HardFail {
			return false, cbErr
		}
		return result, cbErr
	}
	return result, nil
}

// Query emits matches for (sPat,pPat,oPat) into sink,
// budgeted under the same policy as Ask (queries are treated as an
// ask-side operation).
func (e *Engine) Query(sPat, pPat, oPat intern.NodeID, sink []store.Triple) (store.QueryStatus, error) {
	start := cycle.Now()
	status := e.store.Query(sPat, pPat, oPat, sink)
	elapsed := cycle.Now() - start

	if cbErr := e.checkBudget(e.cfg.askBudget, "query", elapsed); cbErr != nil {
		if e.cfg.askBudget.Policy == cycle.HardFail {
			return store.QueryStatus{}, cbErr
		}
		return status, cbErr
	}
	return status, nil
}

// SubjectAdjacency returns a zero-copy view of subject's outgoing
// edges. Unbudgeted: a single index lookup plus a slice
// return, with no separate work to measure beyond Ask itself.
func (e *Engine) SubjectAdjacency(subject intern.NodeID) []store.Edge {
	return e.store.SubjectAdjacency(subject)
}

// AssertAxiom records and, where the kind permits, applies an OWL
// axiom. Unbudgeted: axiom assertion is construction-time
// bookkeeping, not an ask/add/validate hot path.
func (e *Engine) AssertAxiom(kind owl.AxiomKind, subject, object intern.NodeID) error {
	if err := e.owl.AssertAxiom(kind, subject, object); err != nil {
		return fmt.Errorf("engine: assert axiom: %w: %w", ErrInvalidArgument, err)
	}
	return nil
}

// Materialize runs Floyd-Warshall row-union closure over the class
// hierarchy and every transitive property's direct edges. It
// is explicitly outside the cycle-budget contract; its own elapsed
// cycles are reported in the result, not checked against a budget.
func (e *Engine) Materialize(reset bool) (owl.MaterializationReport, error) {
	report, err := e.owl.Materialize(reset)
	if err != nil {
		return owl.MaterializationReport{}, err
	}
	e.logger.Info("materialized",
		zap.String("id", report.ID),
		zap.Int("inferences", report.InferenceCount),
		zap.Uint64("cycles", report.Cycles),
	)
	return report, nil
}

// IsSubclassOf, IsEquivalent, IsDisjointWith, and
// HasPropertyCharacteristic are O(1) bit-matrix reads; they are not
// wrapped with a CycleBudgetError since only ask, add, and validate
// are the contract's budgeted surfaces.
func (e *Engine) IsSubclassOf(c, d intern.NodeID) bool { return e.owl.IsSubclassOf(c, d) }
func (e *Engine) IsEquivalent(a, b intern.NodeID) bool { return e.owl.IsEquivalent(a, b) }
func (e *Engine) IsDisjointWith(a, b intern.NodeID) bool { return e.owl.IsDisjointWith(a, b) }
func (e *Engine) HasPropertyCharacteristic(p intern.NodeID, kind owl.PropertyCharacteristic) bool {
	return e.owl.HasPropertyCharacteristic(p, kind)
}

// TransitiveAsk reports whether o is reachable from s along edges
// labeled a Transitive property p.
func (e *Engine) TransitiveAsk(s, p, o intern.NodeID) bool {
	return e.owl.TransitiveAsk(s, p, o)
}

// Validate evaluates shape against node, budgeted the same
// way as Add: the computed result is always correct, an overrun is
// reported separately.
func (e *Engine) Validate(shape shacl.Shape, node intern.NodeID) (shacl.ValidationResult, error) {
	start := cycle.Now()
	result := shacl.Validate(e.store, e.owl, e.interner, shape, node)
	elapsed := cycle.Now() - start

	if cbErr := e.checkBudget(e.cfg.validateBudget, "validate", elapsed); cbErr != nil {
		if e.cfg.validateBudget.Policy == cycle.HardFail {
			return shacl.ValidationResult{}, cbErr
		}
		return result, cbErr
	}
	return result, nil
}

// Stats returns a point-in-time snapshot of the Triple Store.
// Unbudgeted: it is a diagnostic call, not a hot path.
func (e *Engine) Stats() store.Stats {
	return e.store.Stats()
}
