package mmr

// parentOffset returns the distance from a left child at the given height to
// its parent's position (a right child's parent is the next position).
func parentOffset(height uint64) uint64 {
	return 2 << height
}

// siblingOffset returns the distance from a node at the given height to its
// sibling's position.
func siblingOffset(height uint64) uint64 {
	return (2 << height) - 1
}

// leftPeakPos returns the position of the left most possible peak at the
// given height: the root of the first perfect subtree of that height.
func leftPeakPos(height uint64) uint64 {
	return (2 << height) - 2
}

// heightNodeCount returns the number of nodes (leaves and internal) in a
// perfect subtree of the given height.
func heightNodeCount(height uint64) uint64 {
	return (2 << height) - 1
}
