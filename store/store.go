package store

import (
	"fmt"
	"math/bits"

	"github.com/tickgraph/tickgraph/arena"
	"github.com/tickgraph/tickgraph/intern"
)

// goldenRatio64 is the same Fibonacci-hashing constant used by
// package intern, applied here to a NodeID instead of a byte-string
// hash.
const goldenRatio64 uint64 = 0x9E3779B97F4A7C15

const (
	minHashCapacity     = 16
	initialAdjacencyCap = 4
	edgeSizeBytes       = 8  // two uint32 fields
	nodeEntrySizeBytes  = 8  // id + next, both int32/uint32
	adjacencySliceBytes = 24 // Go slice header, charged once per node
)

// nodeEntry is one slot of the chained subject index. next == -1 is
// the terminal sentinel, since entries are indexed by a signed int32
// here (see DESIGN.md).
type nodeEntry struct {
	id   intern.NodeID
	next int32
}

// Store is the arena-backed triple store.
type Store struct {
	arena *arena.Arena

	tripleCap int
	nodeCap   int
	hashCap   int
	hashShift uint

	triples []Triple

	buckets   []int32
	entries   []nodeEntry
	adjacency [][]Edge
}

// New constructs a Store with fixed triple and node capacities,
// charging its subject-index and dense-array storage against ar.
// hashCap is kept a power of two sized >= nodeCap.
func New(ar *arena.Arena, tripleCapacity, nodeCapacity int) (*Store, error) {
	if tripleCapacity <= 0 || nodeCapacity <= 0 {
		return nil, ErrInvalidDimensions
	}
	hashCap := nextPow2(nodeCapacity)
	if hashCap < minHashCapacity {
		hashCap = minHashCapacity
	}

	if err := ar.Reserve(uint64(tripleCapacity) * 12); err != nil {
		return nil, fmt.Errorf("store: reserve dense triples: %w", err)
	}
	if err := ar.Reserve(uint64(hashCap) * 4); err != nil {
		return nil, fmt.Errorf("store: reserve hash buckets: %w", err)
	}
	if err := ar.Reserve(uint64(nodeCapacity) * (nodeEntrySizeBytes + adjacencySliceBytes)); err != nil {
		return nil, fmt.Errorf("store: reserve node table: %w", err)
	}

	buckets := make([]int32, hashCap)
	for i := range buckets {
		buckets[i] = -1
	}

	return &Store{
		arena:     ar,
		tripleCap: tripleCapacity,
		nodeCap:   nodeCapacity,
		hashCap:   hashCap,
		hashShift: 64 - uint(bits.TrailingZeros(uint(hashCap))),
		triples:   make([]Triple, 0, tripleCapacity),
		buckets:   buckets,
		entries:   make([]nodeEntry, 0, nodeCapacity),
		adjacency: make([][]Edge, 0, nodeCapacity),
	}, nil
}

func (s *Store) bucket(id intern.NodeID) int {
	return int((uint64(id) * goldenRatio64) >> s.hashShift)
}

// findNode walks the chain for id and returns its position in
// entries/adjacency, or (-1, false) if id is unknown.
func (s *Store) findNode(id intern.NodeID) (int, bool) {
	idx := s.buckets[s.bucket(id)]
	for idx != -1 {
		e := s.entries[idx]
		if e.id == id {
			return int(idx), true
		}
		idx = e.next
	}
	return -1, false
}

// ensureNode returns id's position, creating an entry (with an empty
// adjacency slice) if id has never been seen. Node capacity is fixed
// at construction; exceeding it is ErrNodeTableFull.
func (s *Store) ensureNode(id intern.NodeID) (int, error) {
	if idx, ok := s.findNode(id); ok {
		return idx, nil
	}
	if len(s.entries) >= s.nodeCap {
		return -1, ErrNodeTableFull
	}
	idx := int32(len(s.entries))
	b := s.bucket(id)
	s.entries = append(s.entries, nodeEntry{id: id, next: s.buckets[b]})
	s.adjacency = append(s.adjacency, nil)
	s.buckets[b] = idx
	return int(idx), nil
}

// Add appends (s,p,o) to the dense triple array and to subject s's
// adjacency list. Both s and o are additionally registered in the
// subject index (idempotent) even if the call ultimately fails on
// adjacency growth: node-table inserts are additive and harmless, so
// only the dense triple count is rolled back on ErrOutOfArena, never
// the node-table inserts.
//
// Complexity: O(1) amortized.
func (s *Store) Add(subject, predicate, object intern.NodeID) error {
	sIdx, err := s.ensureNode(subject)
	if err != nil {
		return err
	}
	if _, err := s.ensureNode(object); err != nil {
		return err
	}

	if len(s.triples) >= s.tripleCap {
		return ErrStoreFull
	}
	s.triples = append(s.triples, Triple{Subject: subject, Predicate: predicate, Object: object})

	if err := s.appendEdge(sIdx, Edge{Predicate: predicate, Object: object}); err != nil {
		s.triples = s.triples[:len(s.triples)-1] // roll back the dense append
		return err
	}
	return nil
}

// appendEdge grows subject sIdx's adjacency slice by doubling from an
// initial capacity of 4, charging each doubling against the Arena and
// abandoning the old backing array — no compaction.
func (s *Store) appendEdge(sIdx int, e Edge) error {
	cur := s.adjacency[sIdx]
	if len(cur) == cap(cur) {
		newCap := initialAdjacencyCap
		if cap(cur) > 0 {
			newCap = cap(cur) * 2
		}
		if err := s.arena.Reserve(uint64(newCap) * edgeSizeBytes); err != nil {
			return fmt.Errorf("store: grow adjacency to %d: %w", newCap, ErrOutOfArena)
		}
		grown := make([]Edge, len(cur), newCap)
		copy(grown, cur)
		cur = grown
	}
	s.adjacency[sIdx] = append(cur, e)
	return nil
}

// Ask reports whether (subject,predicate,object) exists. No
// allocation; bounded by subject's out-degree.
//
// Complexity: O(degree(subject)).
func (s *Store) Ask(subject, predicate, object intern.NodeID) bool {
	idx, ok := s.findNode(subject)
	if !ok {
		return false
	}
	for _, e := range s.adjacency[idx] {
		if e.Predicate == predicate && e.Object == object {
			return true
		}
	}
	return false
}

// Query emits matches for (sPat,pPat,oPat), where each position is
// either a bound NodeID or intern.Wildcard, into sink in insertion
// order: subject-adjacency order for a bound subject, dense-array
// order for a wildcard subject. If more matches exist than len(sink),
// Query fills sink to capacity and reports the untruncated total via
// QueryStatus.Total.
//
// Complexity: O(degree(subject)) for a bound subject, O(triple count)
// for a wildcard subject.
func (s *Store) Query(sPat, pPat, oPat intern.NodeID, sink []Triple) QueryStatus {
	var status QueryStatus

	emit := func(subj, pred, obj intern.NodeID) {
		status.Total++
		if status.Matched < len(sink) {
			sink[status.Matched] = Triple{Subject: subj, Predicate: pred, Object: obj}
			status.Matched++
		}
	}

	if sPat != intern.Wildcard {
		idx, ok := s.findNode(sPat)
		if !ok {
			return status
		}
		for _, e := range s.adjacency[idx] {
			if (pPat == intern.Wildcard || e.Predicate == pPat) && (oPat == intern.Wildcard || e.Object == oPat) {
				emit(sPat, e.Predicate, e.Object)
			}
		}
	} else {
		for _, t := range s.triples {
			if (pPat == intern.Wildcard || t.Predicate == pPat) && (oPat == intern.Wildcard || t.Object == oPat) {
				emit(t.Subject, t.Predicate, t.Object)
			}
		}
	}

	status.Truncated = status.Total > status.Matched
	return status
}

// HasNode reports whether id has ever been seen as a subject or
// object of some triple.
func (s *Store) HasNode(id intern.NodeID) bool {
	_, ok := s.findNode(id)
	return ok
}

// SubjectAdjacency returns a zero-copy view of subject's outgoing
// (predicate, object) pairs, or nil if subject is unknown.
func (s *Store) SubjectAdjacency(subject intern.NodeID) []Edge {
	idx, ok := s.findNode(subject)
	if !ok {
		return nil
	}
	return s.adjacency[idx]
}

// ForEachWithPredicate calls fn(subject, object) for every dense
// triple whose predicate matches p, in insertion order. It exists so
// package owl can seed transitive closure from direct edges via a
// method call rather than reaching into Store internals.
//
// Complexity: O(triple count).
func (s *Store) ForEachWithPredicate(p intern.NodeID, fn func(subject, object intern.NodeID)) {
	for _, t := range s.triples {
		if t.Predicate == p {
			fn(t.Subject, t.Object)
		}
	}
}

// Stats returns a point-in-time, non-mutating snapshot of the store.
func (s *Store) Stats() Stats {
	st := Stats{
		TripleCount: len(s.triples),
		NodeCount:   len(s.entries),
		MemoryBytes: s.arena.Used(),
	}
	for _, adj := range s.adjacency {
		st.EdgeTotal += len(adj)
		if len(adj) > st.MaxOutDegree {
			st.MaxOutDegree = len(adj)
		}
	}
	if st.NodeCount > 0 {
		st.AvgOutDegree = float64(st.EdgeTotal) / float64(st.NodeCount)
	}
	st.HashLoadFactor = float64(st.NodeCount) / float64(s.hashCap)
	return st
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
