package mmr

import "errors"

// ErrEmpty is returned by Builder.Root when the mmr has no nodes yet.
var ErrEmpty = errors.New("mmr: empty")

// Builder owns the push side of an MMR: it borrows a Store and a merge
// function and materializes internal nodes as leaves are pushed. A Builder
// is not safe for concurrent use; pushes impose a total order on leaves and
// the store holds the Builder's only mutable state.
type Builder struct {
	store Store
	merge MergeFunc
	size  uint64
}

// NewBuilder returns a Builder over store, starting from initialSize (0 for
// an empty mmr). It is an error for initialSize to exceed the store's
// capacity.
func NewBuilder(store Store, merge MergeFunc, initialSize uint64) (*Builder, error) {
	if initialSize > store.Cap() {
		return nil, ErrCapacityExceeded
	}
	return &Builder{store: store, merge: merge, size: initialSize}, nil
}

// Size returns the current mmr_size: the total number of materialized
// nodes, leaves and internal alike.
func (b *Builder) Size() uint64 { return b.size }

// Push appends leaf to the mmr, materializing whatever internal nodes its
// addition completes, and advances Size accordingly.
func (b *Builder) Push(leaf Digest) error {
	pos := b.size
	if pos >= b.store.Cap() {
		return ErrCapacityExceeded
	}
	if _, err := b.store.Append(leaf); err != nil {
		return err
	}

	height := uint64(0)
	i := pos
	for heightOf(i+1) > height {
		i++
		if i >= b.store.Cap() {
			return ErrCapacityExceeded
		}
		leftPos := i - parentOffset(height)
		rightPos := leftPos + siblingOffset(height)
		left, err := b.store.Get(leftPos)
		if err != nil {
			return err
		}
		right, err := b.store.Get(rightPos)
		if err != nil {
			return err
		}
		if _, err := b.store.Append(b.merge(left, right)); err != nil {
			return err
		}
		height++
	}
	b.size = i + 1
	return nil
}

// Root folds the current peaks into a single digest: merge is the capacity
// this package exists for, so the fold order below is load-bearing and
// matches the Verifier's fold exactly — see the "Peak-bagging argument
// order" note in SPEC_FULL.md.
func (b *Builder) Root() (Digest, error) {
	switch b.size {
	case 0:
		return nil, ErrEmpty
	case 1:
		return b.store.Get(0)
	}

	peaks := Peaks(b.size)
	acc, err := b.store.Get(peaks[len(peaks)-1])
	if err != nil {
		return nil, err
	}
	for i := len(peaks) - 2; i >= 0; i-- {
		next, err := b.store.Get(peaks[i])
		if err != nil {
			return nil, err
		}
		acc = b.merge(acc, next)
	}
	return acc, nil
}

// bagPeaksRHS folds the digests of every peak strictly to the right of
// skipPos (exclusive), right-to-left, returning (digest, true), or
// (nil, false) if no peak qualifies.
func bagPeaksRHS(store Store, merge MergeFunc, peaks []uint64, skipPos uint64) (Digest, bool, error) {
	var rhs []uint64
	for _, p := range peaks {
		if p > skipPos {
			rhs = append(rhs, p)
		}
	}
	if len(rhs) == 0 {
		return nil, false, nil
	}
	acc, err := store.Get(rhs[len(rhs)-1])
	if err != nil {
		return nil, false, err
	}
	for i := len(rhs) - 2; i >= 0; i-- {
		next, err := store.Get(rhs[i])
		if err != nil {
			return nil, false, err
		}
		acc = merge(acc, next)
	}
	return acc, true, nil
}
