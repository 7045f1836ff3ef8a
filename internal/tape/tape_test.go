package tape

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecorder(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, 0, m.Len())

	require.NoError(t, m.Record("number", "(2+0i)"))
	require.NoError(t, m.Record("command", "+"))

	entries, err := m.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Seq: 1, Kind: "number", Text: "(2+0i)"}, entries[0])
	assert.Equal(t, Entry{Seq: 2, Kind: "command", Text: "+"}, entries[1])

	// Entries hands out a copy
	entries[0].Text = "mutated"
	again, err := m.Entries()
	require.NoError(t, err)
	assert.Equal(t, "(2+0i)", again[0].Text)

	assert.NoError(t, m.Close())
}

func TestStoreRecordAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tape.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.NotEmpty(t, s.Session())

	require.NoError(t, s.Record("number", "(2+0i)"))
	require.NoError(t, s.Record("number", "(3+0i)"))
	require.NoError(t, s.Record("command", "+"))

	entries, err := s.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Seq: 1, Kind: "number", Text: "(2+0i)"}, entries[0])
	assert.Equal(t, Entry{Seq: 3, Kind: "command", Text: "+"}, entries[2])
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tape.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Record("command", "pi"))
	require.NoError(t, first.Close())

	// reopening the same database starts a fresh, empty session
	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	assert.NotEqual(t, first.Session(), second.Session())

	entries, err := second.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreOpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "no", "such", "dir", "tape.db"))
	assert.Error(t, err)
}
