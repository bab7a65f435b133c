//go:build amd64

package cycle

import "github.com/klauspost/cpuid/v2"

// now reads the timestamp counter via RDTSC (cycle_amd64.s).
func now() uint64

// Supported reports whether the host CPU exposes a time-stamp counter
// usable as a cycle counter. amd64 hosts without TSC are not known to
// exist in practice, but the check costs nothing at startup and keeps
// the contract honest.
func Supported() bool {
	return cpuid.CPU.Has(cpuid.TSC)
}
