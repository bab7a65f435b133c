//go:build arm64

package cycle

// now reads the virtual counter register via CNTVCT_EL0 (cycle_arm64.s).
func now() uint64

// Supported reports whether the host exposes CNTVCT_EL0. All current
// arm64 targets Go supports do; this always returns true, kept as a
// named capability so callers never branch on GOARCH directly.
func Supported() bool {
	return true
}
