// Package store implements the arena-backed triple store: a dense,
// append-only triple array, per-subject adjacency lists that double on
// growth, and a golden-ratio-hashed chained index from NodeID to
// adjacency position.
//
// Add is O(1) amortized; Ask and Query never allocate and are bounded
// by the matching subject's out-degree (or, for a wildcard subject, by
// a single linear pass over the dense array). Triple and node capacity
// are fixed at construction and never grow — exhaustion is always a
// named, client-visible error, never an implicit fallback.
package store
