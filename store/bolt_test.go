package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestline/mmr"
)

func TestBoltStoreAppendGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmr.db")
	s, err := Open(path, 16)
	require.NoError(t, err)
	defer s.Close()

	for i := uint64(0); i < 5; i++ {
		pos, err := s.Append(mmr.Digest{byte(i)})
		require.NoError(t, err)
		assert.Equal(t, i, pos)
	}

	for i := uint64(0); i < 5; i++ {
		got, err := s.Get(i)
		require.NoError(t, err)
		assert.Equal(t, mmr.Digest{byte(i)}, got)
	}
}

func TestBoltStoreCapacityExceeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmr.db")
	s, err := Open(path, 1)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Append(mmr.Digest{1})
	require.NoError(t, err)
	_, err = s.Append(mmr.Digest{2})
	assert.ErrorIs(t, err, mmr.ErrCapacityExceeded)
}

func TestBoltStoreGetMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmr.db")
	s, err := Open(path, 4)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(0)
	assert.ErrorIs(t, err, mmr.ErrNotFound)
}

func TestBoltStoreReopenPreservesSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmr.db")
	s, err := Open(path, 16)
	require.NoError(t, err)
	for i := uint64(0); i < 3; i++ {
		_, err := s.Append(mmr.Digest{byte(i)})
		require.NoError(t, err)
	}
	require.NoError(t, s.Close())

	reopened, err := Open(path, 16)
	require.NoError(t, err)
	defer reopened.Close()
	assert.EqualValues(t, 3, reopened.Size())
}
