// Package cycle provides the monotonic CPU cycle counter and the
// budget-check primitive that back the engine's "7-tick" latency
// contract.
//
// Now reads the host's cycle counter: RDTSC on amd64, CNTVCT_EL0 on
// arm64, and a strictly monotonic fallback counter elsewhere. The
// counter is architecture-specific and, per contract, unspecified in
// absolute units on targets lacking a native cycle counter — callers
// that need calibration should measure a known workload rather than
// assume a fixed frequency.
package cycle
