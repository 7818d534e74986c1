// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Record("search", "cat:cs.LG", 10, false))
	require.NoError(t, s.Record("paper", "2301.07041", 1, false))
	require.NoError(t, s.Record("search", "au:\"Knuth\"", 0, true))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "search", entries[0].Kind)
	assert.Equal(t, `au:"Knuth"`, entries[0].Query)
	assert.True(t, entries[0].Failed)
	assert.Equal(t, "paper", entries[1].Kind)
	assert.Equal(t, 1, entries[1].ResultCount)
	assert.False(t, entries[1].Failed)
	assert.Equal(t, "cat:cs.LG", entries[2].Query)
	assert.False(t, entries[0].At.IsZero())
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record("search", "q", i, false))
	}

	entries, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 4, entries[0].ResultCount)
}

func TestRecentDefaultLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 25; i++ {
		require.NoError(t, s.Record("search", "q", i, false))
	}

	entries, err := s.Recent(0)
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}

func TestRecentEmpty(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record("search", "q", 0, false))
}
