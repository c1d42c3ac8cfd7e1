package mmr

import "errors"

// ErrBufferTooSmall is returned by Builder.GenProof when buf is too short
// to hold the whole proof.
var ErrBufferTooSmall = errors.New("mmr: proof buffer too small")

// GenProof writes the inclusion proof for the leaf at pos into buf and
// returns how many digests it used. It returns ErrBufferTooSmall, leaving
// buf's contents unspecified, if buf is shorter than the proof.
//
// Phase A climbs from pos to its containing peak, collecting sibling
// digests; Phase B appends, at most, one digest bagging every peak to the
// right of that peak, then every peak to its left in descending position
// order.
func (b *Builder) GenProof(pos uint64, buf []Digest) (int, error) {
	size := b.size
	n := 0

	height := uint64(0)
	cur := pos
	for {
		ph := heightOf(cur)
		nh := heightOf(cur + 1)

		var siblingPos, next uint64
		if nh > ph {
			// cur is a right child.
			siblingPos = cur - siblingOffset(height)
			next = cur + 1
		} else {
			// cur is a left child.
			siblingPos = cur + siblingOffset(height)
			next = cur + parentOffset(height)
		}
		if siblingPos > size-1 {
			break
		}
		if n >= len(buf) {
			return 0, ErrBufferTooSmall
		}
		sib, err := b.store.Get(siblingPos)
		if err != nil {
			return 0, err
		}
		buf[n] = sib
		n++
		cur = next
		height++
	}

	peaks := Peaks(size)

	if rhs, ok, err := bagPeaksRHS(b.store, b.merge, peaks, cur); err != nil {
		return 0, err
	} else if ok {
		if n >= len(buf) {
			return 0, ErrBufferTooSmall
		}
		buf[n] = rhs
		n++
	}

	for i := len(peaks) - 1; i >= 0; i-- {
		if peaks[i] >= cur {
			continue
		}
		if n >= len(buf) {
			return 0, ErrBufferTooSmall
		}
		d, err := b.store.Get(peaks[i])
		if err != nil {
			return 0, err
		}
		buf[n] = d
		n++
	}

	return n, nil
}
