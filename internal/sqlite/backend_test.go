// Unit tests for backend attach/detach lifecycle and schema creation.
package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// newTestBackend attaches a backend against a fresh temp directory and
// registers cleanup. Seeding is off unless requested so tests start from an
// empty store.
func newTestBackend(t *testing.T, seed bool) *Backend {
	t.Helper()

	b := NewBackend()
	cfg := types.Config{DataDir: t.TempDir(), SeedOnInit: seed}
	require.NoError(t, b.Attach(cfg))
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

// mustInstant parses a wire timestamp or fails the test.
func mustInstant(t *testing.T, s string) time.Time {
	t.Helper()

	at, err := types.ParseInstant(s)
	require.NoError(t, err)
	return at
}

func TestBackendAttach(t *testing.T) {
	t.Run("creates data dir and database file", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "nested", "store")
		b := NewBackend()
		require.NoError(t, b.Attach(types.Config{DataDir: dataDir}))
		defer b.Detach()

		assert.FileExists(t, filepath.Join(dataDir, types.DefaultDBFile))
	})

	t.Run("second attach returns ErrAlreadyAttached", func(t *testing.T) {
		b := newTestBackend(t, false)
		assert.ErrorIs(t, b.Attach(types.Config{DataDir: t.TempDir()}), types.ErrAlreadyAttached)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		b := NewBackend()
		err := b.Attach(types.Config{DataDir: t.TempDir(), DBFile: "a/b.db"})
		assert.ErrorIs(t, err, types.ErrDBFileInvalid)
	})

	t.Run("reattach preserves existing data", func(t *testing.T) {
		dataDir := t.TempDir()
		b := NewBackend()
		require.NoError(t, b.Attach(types.Config{DataDir: dataDir}))

		_, err := b.SaveDocument("Persistent", mustInstant(t, "2023-01-01T00:00:00Z"), "body")
		require.NoError(t, err)
		require.NoError(t, b.Detach())

		b2 := NewBackend()
		require.NoError(t, b2.Attach(types.Config{DataDir: dataDir}))
		defer b2.Detach()

		titles, err := b2.ListTitles()
		require.NoError(t, err)
		assert.Equal(t, []string{"Persistent"}, titles)
	})
}

func TestBackendDetach(t *testing.T) {
	t.Run("detach is idempotent", func(t *testing.T) {
		b := newTestBackend(t, false)
		require.NoError(t, b.Detach())
		assert.NoError(t, b.Detach())
	})

	t.Run("operations on a detached backend fail", func(t *testing.T) {
		b := newTestBackend(t, false)
		require.NoError(t, b.Detach())

		_, err := b.ListTitles()
		assert.ErrorIs(t, err, types.ErrStoreDetached)

		_, err = b.ListRevisions("anything")
		assert.ErrorIs(t, err, types.ErrStoreDetached)

		_, err = b.Latest("anything")
		assert.ErrorIs(t, err, types.ErrStoreDetached)

		_, err = b.AsOf("anything", time.Now())
		assert.ErrorIs(t, err, types.ErrStoreDetached)

		_, err = b.PostRevision("anything", time.Now(), "body")
		assert.ErrorIs(t, err, types.ErrStoreDetached)

		_, err = b.SaveDocument("anything", time.Now(), "body")
		assert.ErrorIs(t, err, types.ErrStoreDetached)
	})
}

func TestBackendEmptyStore(t *testing.T) {
	b := newTestBackend(t, false)

	_, err := b.ListTitles()
	assert.ErrorIs(t, err, types.ErrNoData)
}
