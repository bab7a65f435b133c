package store

import "github.com/tickgraph/tickgraph/intern"

// Edge is one outgoing (predicate, object) pair in a subject's
// adjacency list.
type Edge struct {
	Predicate intern.NodeID
	Object    intern.NodeID
}

// Triple is one (subject, predicate, object) row of the dense array.
type Triple struct {
	Subject   intern.NodeID
	Predicate intern.NodeID
	Object    intern.NodeID
}

// Stats is the pure, non-mutating snapshot returned by Store.Stats.
type Stats struct {
	TripleCount    int
	NodeCount      int
	EdgeTotal      int
	MaxOutDegree   int
	AvgOutDegree   float64
	HashLoadFactor float64
	MemoryBytes    uint64
}

// QueryStatus reports how a Query call was satisfied: how many
// matches were written into the caller's sink, how many matches exist
// in total, and whether the sink was too small to hold them all.
type QueryStatus struct {
	Matched   int
	Total     int
	Truncated bool
}
