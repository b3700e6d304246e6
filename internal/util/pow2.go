package util

// IsPowerOfTwo reports whether x is a power of two (> 0).
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && (x&(x-1)) == 0
}

// AlignDown clears the low bits of addr below line, which must be a power
// of two. A line of 0 or 1 returns addr unchanged.
func AlignDown(addr, line uint64) uint64 {
	if line <= 1 {
		return addr
	}
	return addr &^ (line - 1)
}
