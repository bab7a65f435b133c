package arena

import "errors"

// ErrOutOfArena is returned when a Reserve or AllocateBytes call would
// exceed the Arena's fixed capacity. The Arena never grows past its
// construction-time size; exhaustion is always a client-visible error,
// never an implicit fallback to the Go heap.
var ErrOutOfArena = errors.New("arena: out of arena capacity")

// ErrInvalidCapacity is returned by New when the requested capacity is
// not positive.
var ErrInvalidCapacity = errors.New("arena: capacity must be > 0")
