// Package store provides a persistent mmr.Store backed by bbolt, for
// callers who need node data to survive process restarts. The core mmr
// package takes no position on storage; this is an external collaborator
// that merely satisfies mmr.Store.
package store

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/crestline/mmr"
)

var nodesBucket = []byte("nodes")

// BoltStore is an mmr.Store backed by a single bbolt bucket, keyed by the
// big-endian encoding of each node's position.
type BoltStore struct {
	db   *bbolt.DB
	cap  uint64
	size uint64
}

// Open opens (creating if necessary) a BoltStore at path, able to hold up
// to capacity nodes.
func Open(path string, capacity uint64) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	s := &BoltStore{db: db, cap: capacity}
	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(nodesBucket)
		if err != nil {
			return err
		}
		s.size = uint64(b.Stats().KeyN)
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying bbolt database handle.
func (s *BoltStore) Close() error { return s.db.Close() }

func posKey(pos uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, pos)
	return key
}

func (s *BoltStore) Get(pos uint64) (mmr.Digest, error) {
	var out mmr.Digest
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(nodesBucket).Get(posKey(pos))
		if v == nil {
			return mmr.ErrNotFound
		}
		out = append(mmr.Digest(nil), v...)
		return nil
	})
	return out, err
}

func (s *BoltStore) Append(value mmr.Digest) (uint64, error) {
	if s.size >= s.cap {
		return 0, mmr.ErrCapacityExceeded
	}
	pos := s.size
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(nodesBucket).Put(posKey(pos), value)
	})
	if err != nil {
		return 0, err
	}
	s.size++
	return pos, nil
}

func (s *BoltStore) Size() uint64 { return s.size }
func (s *BoltStore) Cap() uint64  { return s.cap }
