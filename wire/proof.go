// Package wire provides a CBOR encoding for inclusion proofs, for callers
// that need to transport or store a proof alongside the leaf it covers. A
// proof itself is just a []mmr.Digest; this package only adds a
// self-describing envelope around one.
package wire

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/crestline/mmr"
)

// Envelope bundles everything a remote verifier needs: the leaf, its
// position and mmr_size at the time the proof was generated, and the
// proof's digest list.
type Envelope struct {
	Leaf    mmr.Digest   `cbor:"1,keyasint"`
	Pos     uint64       `cbor:"2,keyasint"`
	MMRSize uint64       `cbor:"3,keyasint"`
	Proof   []mmr.Digest `cbor:"4,keyasint"`
}

var encMode = func() cbor.EncMode {
	m, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return m
}()

// Marshal encodes an Envelope to its canonical CBOR form.
func Marshal(e Envelope) ([]byte, error) {
	return encMode.Marshal(e)
}

// Unmarshal decodes an Envelope previously produced by Marshal.
func Unmarshal(data []byte) (Envelope, error) {
	var e Envelope
	err := cbor.Unmarshal(data, &e)
	return e, err
}
