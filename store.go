package mmr

import "errors"

// ErrNotFound is returned by Store.Get for a position that has never been
// written.
var ErrNotFound = errors.New("mmr: position not found")

// ErrCapacityExceeded is returned by Store.Append, NewBuilder and
// Builder.Push when a write would exceed the store's capacity.
var ErrCapacityExceeded = errors.New("mmr: capacity exceeded")

// Store is the append-addressable backing store a Builder writes nodes
// into. It is a collaborator the Builder borrows, not state the Builder
// owns: persistence, paging and backing-store choice are all outside this
// package's concerns.
//
// Positions are zero-based and write-once: once a position holds a digest,
// a conforming Store never lets it be overwritten.
type Store interface {
	// Get returns the digest at pos, or ErrNotFound if pos has not been
	// written yet.
	Get(pos uint64) (Digest, error)
	// Append writes value at the next free position and returns that
	// position. It returns ErrCapacityExceeded if the store is full.
	Append(value Digest) (uint64, error)
	// Size returns one past the highest position written so far.
	Size() uint64
	// Cap returns the store's capacity: Append fails once Size() reaches it.
	Cap() uint64
}
