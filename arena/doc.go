// Package arena implements the bump allocator backing every long-lived
// structure owned by a tickgraph Engine: interned string bytes, adjacency
// arrays, and bit-matrix word storage all draw from one Arena.
//
// An Arena never frees an individual allocation. It hands out either
// accounted capacity (Reserve, for storage the caller keeps in its own
// Go slice) or real byte storage (AllocateBytes, a sub-slice of one
// preallocated buffer, used by the string interner). Reset returns the
// high-water mark to zero in O(1); every slice or index handed out
// before a Reset is a dangling handle by contract, not by runtime
// enforcement — callers who keep using one after a Reset get undefined
// (but memory-safe: eventually-overwritten) results, never a crash.
//
// Complexity: Reserve and AllocateBytes are O(1). Reset is O(1).
package arena
