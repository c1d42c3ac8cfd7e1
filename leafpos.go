package mmr

import "math/bits"

// SizePosOfLeaf returns the mmr_size at which leaf index i was the most
// recently pushed leaf, and i's own node position within that mmr.
//
// The leaf count i+1 is repeatedly decomposed into its largest remaining
// power of two (a perfect sub-mountain); each stripped sub-mountain of
// height h contributes heightNodeCount(h) nodes. The last sub-mountain
// stripped is the one containing leaf i: if it has exactly one leaf
// (height 0), leaf i is itself a brand new rank-0 peak; otherwise leaf i
// is that sub-mountain's right most leaf.
//
// SizePosOfLeaf(0) = (1, 0); the general loop below produces that without
// any special case.
func SizePosOfLeaf(i uint64) (mmrSize, pos uint64) {
	remaining := i + 1

	var total uint64
	var lastHeight uint64
	var lastLeaves uint64

	for remaining > 0 {
		height := log2Floor(remaining)
		leaves := uint64(1) << height
		total += heightNodeCount(height)
		lastHeight = height
		lastLeaves = leaves
		remaining -= leaves
	}

	if lastLeaves == 1 {
		return total, total - 1
	}
	return total, total - 1 - lastHeight
}

// leafCount returns the number of leaves pushed into an MMR of the given
// size, derived from the peak count identity size = 2*n - popcount(n).
func leafCount(size uint64) uint64 {
	if size == 0 {
		return 0
	}
	// n and popcount(n) both depend on n, so search via the monotone
	// relationship between size and n rather than invert algebraically.
	lo, hi := uint64(0), size
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if mmrSizeForLeaves(mid) <= size {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func mmrSizeForLeaves(n uint64) uint64 {
	return 2*n - uint64(bits.OnesCount64(n))
}
