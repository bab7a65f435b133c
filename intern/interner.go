package intern

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/tickgraph/tickgraph/arena"
)

// goldenRatio64 is the Fibonacci-hashing multiplicative constant:
// floor(2^64 / phi).
const goldenRatio64 uint64 = 0x9E3779B97F4A7C15

// maxLoadFactorNum/Den bound the table's fill ratio before it must grow.
const (
	maxLoadFactorNum = 3
	maxLoadFactorDen = 4
)

const minTableCapacity = 16

// slot is one entry of the open-addressed table. An empty slot has
// occupied == false; probing never distinguishes "empty" from
// "deleted" because the Interner never removes individual entries
// (only Reset, via the Arena, clears everything at once).
type slot struct {
	occupied bool
	hash     uint64
	id       NodeID
}

// location records where a NodeID's canonical bytes live in the
// backing Arena.
type location struct {
	offset uint32
	length uint32
}

// Interner deduplicates byte-strings into dense NodeIDs. See the
// package doc comment for the hashing algorithm.
type Interner struct {
	arena       *arena.Arena
	maxEntities int

	table []slot
	shift uint // bucket(hash) = (hash * goldenRatio64) >> shift

	locations []location // NodeID -> byte range in arena
	kinds     []Kind      // NodeID -> Kind
}

// New constructs an Interner backed by ar, capped at maxEntities
// distinct NodeIDs. maxEntities must be positive.
func New(ar *arena.Arena, maxEntities int) (*Interner, error) {
	if maxEntities <= 0 {
		return nil, fmt.Errorf("intern: maxEntities must be > 0")
	}
	capacity := nextPow2(maxEntities * maxLoadFactorDen / maxLoadFactorNum)
	if capacity < minTableCapacity {
		capacity = minTableCapacity
	}
	if err := ar.Reserve(uint64(capacity) * uint64(tableSlotBytes)); err != nil {
		return nil, fmt.Errorf("intern: initial table: %w", err)
	}
	return &Interner{
		arena:       ar,
		maxEntities: maxEntities,
		table:       make([]slot, capacity),
		shift:       64 - uint(bits.TrailingZeros(uint(capacity))),
	}, nil
}

// tableSlotBytes is the logical byte cost charged against the Arena
// per table slot; slots themselves live on the Go heap (see Arena doc
// comment: Reserve is for accounting, not literal byte storage).
const tableSlotBytes = 24

// Count returns the number of distinct interned strings.
func (in *Interner) Count() int { return len(in.locations) }

// MaxEntities returns the configured node-id capacity.
func (in *Interner) MaxEntities() int { return in.maxEntities }

// Kind returns the Kind recorded for id, or KindIRI if id is unknown.
func (in *Interner) Kind(id NodeID) Kind {
	if int(id) >= len(in.kinds) {
		return KindIRI
	}
	return in.kinds[id]
}

// Bytes returns the canonical bytes for id, or (nil, false) if id was
// never interned. The returned slice is a view into the Arena and is
// valid only until the next Reset.
func (in *Interner) Bytes(id NodeID) ([]byte, bool) {
	if int(id) >= len(in.locations) {
		return nil, false
	}
	loc := in.locations[id]
	return in.arenaBytes(loc), true
}

func (in *Interner) arenaBytes(loc location) []byte {
	b, _ := in.arena.View(loc.offset, loc.length)
	return b
}

// Intern deduplicates name and returns a stable NodeID, recording kind
// on first sight. Repeated interns of byte-equal input return the same
// id; byte-unequal input always returns a distinct id.
//
// Complexity: O(1) expected (amortized over table growth).
func (in *Interner) Intern(name []byte, kind Kind) (NodeID, error) {
	if len(name) == 0 {
		return 0, ErrEmptyInput
	}
	h := xxhash.Sum64(name)

	if id, ok := in.lookup(h, name); ok {
		return id, nil
	}

	if len(in.locations) >= in.maxEntities {
		return 0, ErrCapacityExceeded
	}
	if err := in.maybeGrow(); err != nil {
		return 0, err
	}

	offset, stored, err := in.arena.AllocateBytes(len(name))
	if err != nil {
		return 0, fmt.Errorf("intern: copy canonical bytes: %w", err)
	}
	copy(stored, name)

	id := NodeID(len(in.locations))
	in.locations = append(in.locations, location{offset: offset, length: uint32(len(name))})
	in.kinds = append(in.kinds, kind)
	in.insert(h, id)

	return id, nil
}

// lookup walks the open-addressed table from bucket(h) until it finds
// a byte-equal entry (returns true) or an empty slot (returns false).
func (in *Interner) lookup(h uint64, name []byte) (NodeID, bool) {
	tableCap := len(in.table)
	mask := tableCap - 1
	for i, probed := 0, in.bucket(h); i < tableCap; i, probed = i+1, (probed+1)&mask {
		s := in.table[probed]
		if !s.occupied {
			return 0, false
		}
		if s.hash == h && bytes.Equal(in.arenaBytes(in.locations[s.id]), name) {
			return s.id, true
		}
	}
	return 0, false
}

// insert places id into the table, assuming the caller has already
// confirmed no byte-equal entry exists.
func (in *Interner) insert(h uint64, id NodeID) {
	tableCap := len(in.table)
	mask := tableCap - 1
	for i, probed := 0, in.bucket(h); i < tableCap; i, probed = i+1, (probed+1)&mask {
		if !in.table[probed].occupied {
			in.table[probed] = slot{occupied: true, hash: h, id: id}
			return
		}
	}
	// unreachable: maybeGrow guarantees room before every insert.
	panic("intern: table unexpectedly full")
}

// bucket reduces a 64-bit hash to a table index via Fibonacci hashing
// with goldenRatio64.
func (in *Interner) bucket(h uint64) int {
	return int((h * goldenRatio64) >> in.shift)
}

// maybeGrow doubles the table when the load factor ceiling would be
// crossed by one more insert.
func (in *Interner) maybeGrow() error {
	if (len(in.locations)+1)*maxLoadFactorDen <= len(in.table)*maxLoadFactorNum {
		return nil
	}
	newCap := len(in.table) * 2
	if err := in.arena.Reserve(uint64(newCap) * uint64(tableSlotBytes)); err != nil {
		return fmt.Errorf("intern: grow to %d slots: %w", newCap, ErrInternerFull)
	}
	old := in.table
	in.table = make([]slot, newCap)
	in.shift = 64 - uint(bits.TrailingZeros(uint(newCap)))
	for _, s := range old {
		if s.occupied {
			in.insert(s.hash, s.id)
		}
	}
	return nil
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
