package mmr

import "math/bits"

// bitLength returns the position of the highest set bit, 1-based (0 has
// length 0).
func bitLength(num uint64) uint64 {
	return uint64(bits.Len64(num))
}

// allOnes reports whether num's binary representation is a contiguous run
// of 1 bits starting at bit 0 (1, 3, 7, 15, ...).
func allOnes(num uint64) bool {
	return num != 0 && (uint64(1)<<bits.OnesCount64(num))-1 == num
}

// log2Floor returns floor(log2(num)) for num >= 1.
func log2Floor(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}
