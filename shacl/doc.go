// Package shacl implements the SHACL-like shape validator: compiled
// shapes evaluated against a node by
// consulting the Triple Store's adjacency (for presence/count) and
// the OWL Engine (for class-of-value and target-class membership).
//
// Validate never fails; a missing node id is Not-Applicable, not an
// error, and a target-class mismatch is trivially conformant. The
// evaluation path allocates nothing beyond the returned
// ValidationResult: distinct-value counting for MinCount/MaxCount uses
// a nested-loop scan over the adjacency slice already held by the
// store, rather than a map, to keep the hot path allocation-free.
package shacl
