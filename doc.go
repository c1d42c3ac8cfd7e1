// Package mmr implements a Merkle Mountain Range: an append-only
// cryptographic accumulator over an ordered sequence of leaves, with
// compact single-leaf inclusion proofs and incremental root recomputation.
//
// An mmr is a forest of perfect binary trees ("mountains"), flattened into
// a single array in post-order, with the root of each mountain ("peak")
// appearing once its left and right subtrees are both complete. Leaves are
// interleaved with the internal nodes they combine into, so node position
// and leaf index are different coordinate systems related by
// SizePosOfLeaf.
//
// For seven leaves the mmr has size 11: positions 0,1,3,4,7,8,10 are
// leaves; 2,5,9 are internal nodes of height 1; 6 is the height-2 root of
// the first mountain. The peaks are 6, 9 and 10, leaf 10 still pending its
// sibling:
//
//	height
//	2         6
//	        /   \
//	1     2       5       9
//	     / \     / \     / \
//	0   0   1   3   4   7   8   10
//
// A Builder owns the push side: Push appends a leaf and materializes
// whatever internal nodes its arrival completes. Root folds the current
// peaks — 6, 9 and leaf 10, in the diagram above — into a single digest.
//
// A Verifier is independent of any Builder or Store: given a leaf, its
// position, the mmr_size it belonged to, and an inclusion proof produced by
// Builder.GenProof, it recomputes what the root must have been. It can also
// recompute the root after one more leaf is appended, from nothing but the
// previous leaf's own proof — no store lookups required.
package mmr
