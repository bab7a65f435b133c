package store

import "errors"

// ErrStoreFull indicates the dense triple array has reached its
// construction-time capacity.
var ErrStoreFull = errors.New("store: dense triple array full")

// ErrNodeTableFull indicates the subject index cannot admit another
// distinct node.
var ErrNodeTableFull = errors.New("store: node table full")

// ErrOutOfArena indicates an adjacency-array growth could not be
// charged against the backing Arena. add() rolls back the dense triple
// append on this error so the store remains consistent.
var ErrOutOfArena = errors.New("store: adjacency growth exhausted arena")

// ErrInvalidDimensions indicates a non-positive triple or node
// capacity was requested at construction.
var ErrInvalidDimensions = errors.New("store: capacities must be > 0")
