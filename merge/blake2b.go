// Package merge provides ready-made MergeFunc implementations. The core mmr
// package takes no position on which digest primitive to use; this package
// exists to demonstrate that the merge function is genuinely pluggable and
// to give the module's KAT tests a concrete, reproducible merge.
package merge

import (
	"golang.org/x/crypto/blake2b"

	"github.com/crestline/mmr"
)

// Blake2b256 merges by hashing left||right with BLAKE2b-256.
func Blake2b256(left, right mmr.Digest) mmr.Digest {
	h := blake2b.Sum256(append(append([]byte{}, left...), right...))
	return h[:]
}

// LeafDigest encodes a leaf index as a little-endian uint64, zero-padded to
// DigestWidth bytes. It is not a hash of anything — leaves in this scheme
// carry their payload verbatim as a 32-byte digest.
func LeafDigest(i uint64) mmr.Digest {
	d := make(mmr.Digest, mmr.DigestWidth)
	for b := 0; b < 8; b++ {
		d[b] = byte(i >> (8 * b))
	}
	return d
}
