package intern

import "errors"

// ErrInternerFull is returned when the hash table has reached its
// load-factor ceiling and cannot be grown within the backing Arena.
var ErrInternerFull = errors.New("intern: table full, cannot grow within arena")

// ErrEmptyInput is returned by Intern for a zero-length byte-string;
// the empty string is not a valid node name.
var ErrEmptyInput = errors.New("intern: empty byte-string")

// ErrCapacityExceeded is returned when the node space (MaxEntities)
// would be exceeded by a new, never-before-seen string.
var ErrCapacityExceeded = errors.New("intern: node capacity exceeded")
