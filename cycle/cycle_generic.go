//go:build !amd64 && !arm64

package cycle

import "sync/atomic"

// fallback is a strictly monotonic counter used on architectures
// without a native cycle-counter instruction recognized here. It
// satisfies the contract's fallback clause ("operations run unbounded
// but now() still returns a strictly monotonic integer") without
// claiming to measure real CPU cycles.
var fallback uint64

func now() uint64 {
	return atomic.AddUint64(&fallback, 1)
}

// Supported reports false: this build has no native cycle counter
// wired up, so elapsed-cycle budgets are not meaningful here.
func Supported() bool {
	return false
}
