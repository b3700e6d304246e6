// Package util contains internal helpers (hashing, address alignment).
//
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

const (
	fnvOffset64 = 1469598103934665603
	fnvPrime64  = 1099511628211
)

// Fnv64a hashes the 8 little-endian bytes of u without allocating.
// Synthetic traces use it to scatter Zipf ranks over the address space.
func Fnv64a(u uint64) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(u))
		h *= fnvPrime64
		u >>= 8
	}
	return h
}
