package mmr

// heightOf returns the height of the node at the given zero-based position,
// where leaves are height 0. It works by repeatedly jumping to the left
// most node at the same height as pos until an "all ones" (perfect peak)
// position is reached; the number of set bits minus one is the height.
func heightOf(pos uint64) uint64 {
	p := pos + 1
	for !allOnes(p) {
		p = jumpLeft(p)
	}
	return bitLength(p) - 1
}

// jumpLeft moves a one-based position to the left-most position at the same
// height, by subtracting the size of the largest perfect subtree that
// precedes it.
func jumpLeft(pos uint64) uint64 {
	msb := uint64(1) << (bitLength(pos) - 1)
	return pos - (msb - 1)
}
