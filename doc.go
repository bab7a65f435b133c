// Package tickgraph is a cycle-budgeted, in-memory knowledge graph
// engine: triple storage with O(1) pattern lookup, a SHACL-like shape
// validator, and a small subset of OWL reasoning (subclass,
// equivalent, disjoint, transitive, symmetric, functional,
// inverse-functional) over a single arena-backed store.
//
// Its distinguishing property is a hard per-operation latency budget
// expressed in CPU cycles: the ask/add/validate paths are measured
// against a "7-tick" contract under warm-cache conditions.
//
// Everything is organized under subpackages, composed by a single
// façade:
//
//	arena/   — monotonic bump allocator; the capacity budget all long-lived state is charged against
//	intern/  — byte-string to dense NodeID deduplication
//	bitmatrix/ — fixed-capacity bit storage with word-parallel row ops
//	store/   — dense triple array, per-subject adjacency, hash index
//	owl/     — axiom list and bit-matrix-backed subset reasoning
//	shacl/   — compiled shape validator
//	cycle/   — monotonic cycle counter and budget primitives
//	engine/  — the Engine façade: construction, budgets, logging
//
// The engine is single-process, single-writer, many-reader, and
// ephemeral: it reads no environment, opens no files, and holds no
// state that outlives the arena it was built on.
package tickgraph
