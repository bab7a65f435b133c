// Package engine composes the Arena, Interner, Store, and OWL Engine
// into a single public façade: a small, stable surface of
// add/ask/query/assert_axiom/materialize/validate/stats operations.
// Add, Ask, Query and Validate are instrumented with the cycle-budget
// contract; the others are not budgeted.
//
// Construction uses functional options (Option/Config): defaults live in one place,
// WithX constructors override them, and gatherOptions resolves the
// final Config before any component is built. Logging uses
// go.uber.org/zap; by default the Engine logs nothing, since budget
// overruns are reported as typed errors rather than relying on the
// log stream.
package engine
