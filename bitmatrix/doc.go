// Package bitmatrix implements a fixed-capacity rows×cols bit matrix
// with word-parallel set/test/row-union, underpinning the OWL engine's
// class hierarchy, transitive closure, and property-characteristic
// flags.
//
// Storage is row-major: each row occupies ceil(cols/64) consecutive
// uint64 words. UnionRowInto ORs an entire row into another in one pass
// per word rather than bit-by-bit, which is what makes the
// Floyd–Warshall-style materialization in package owl cheap enough to
// run over thousands of entities.
package bitmatrix
