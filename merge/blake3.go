package merge

import (
	"lukechampine.com/blake3"

	"github.com/crestline/mmr"
)

// Domain-separation prefixes tagging leaf vs. internal hashes so the two
// can never collide.
const (
	leafPrefix     = 0x00
	internalPrefix = 0x01
)

// Blake3 merges by hashing a domain-separated left||right with BLAKE3. It
// demonstrates an alternative merge function to Blake2b256.
func Blake3(left, right mmr.Digest) mmr.Digest {
	h := blake3.New(32, nil)
	h.Write([]byte{internalPrefix})
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

// Blake3Leaf hashes a leaf payload with the leaf domain-separation prefix.
func Blake3Leaf(payload []byte) mmr.Digest {
	h := blake3.New(32, nil)
	h.Write([]byte{leafPrefix})
	h.Write(payload)
	return h.Sum(nil)
}
