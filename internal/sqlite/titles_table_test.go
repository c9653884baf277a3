// Unit tests for the titles table accessor.
package sqlite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

func TestTitlesResolveOrCreate(t *testing.T) {
	b := newTestBackend(t, false)

	t.Run("creates on first use and resolves on second", func(t *testing.T) {
		tx, err := b.db.Begin()
		require.NoError(t, err)
		defer tx.Rollback()

		first, err := b.titles.resolveOrCreate(tx, "Gopher")
		require.NoError(t, err)
		require.NotEmpty(t, first)

		second, err := b.titles.resolveOrCreate(tx, "Gopher")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		require.NoError(t, tx.Commit())
	})

	t.Run("length guard runs before any write", func(t *testing.T) {
		tx, err := b.db.Begin()
		require.NoError(t, err)
		defer tx.Rollback()

		_, err = b.titles.resolveOrCreate(tx, strings.Repeat("x", types.MaxTitleLen+1))
		assert.ErrorIs(t, err, types.ErrTitleTooLong)
	})
}

func TestTitlesResolve(t *testing.T) {
	b := newTestBackend(t, false)

	_, err := b.SaveDocument("Known", mustInstant(t, "2023-01-01T00:00:00Z"), "body")
	require.NoError(t, err)

	t.Run("resolves a registered title", func(t *testing.T) {
		id, err := b.titles.resolve("Known")
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("fails for an unregistered title", func(t *testing.T) {
		_, err := b.titles.resolve("Unknown")
		assert.ErrorIs(t, err, types.ErrTitleNotFound)
	})

	t.Run("title matching is case sensitive", func(t *testing.T) {
		_, err := b.titles.resolve("known")
		assert.ErrorIs(t, err, types.ErrTitleNotFound)
	})
}

func TestTitlesList(t *testing.T) {
	t.Run("fails with ErrNoData on an empty store", func(t *testing.T) {
		b := newTestBackend(t, false)

		_, err := b.titles.list()
		assert.ErrorIs(t, err, types.ErrNoData)
	})

	t.Run("returns titles in insertion order", func(t *testing.T) {
		b := newTestBackend(t, false)
		at := mustInstant(t, "2023-01-01T00:00:00Z")

		for _, title := range []string{"Charlie", "Alpha", "Bravo"} {
			_, err := b.SaveDocument(title, at, "body of "+title)
			require.NoError(t, err)
		}

		titles, err := b.titles.list()
		require.NoError(t, err)
		assert.Equal(t, []string{"Charlie", "Alpha", "Bravo"}, titles)
	})

	t.Run("a title appears once regardless of revision count", func(t *testing.T) {
		b := newTestBackend(t, false)

		_, err := b.SaveDocument("Solo", mustInstant(t, "2023-01-01T00:00:00Z"), "v1")
		require.NoError(t, err)
		_, err = b.SaveDocument("Solo", mustInstant(t, "2023-01-02T00:00:00Z"), "v2")
		require.NoError(t, err)

		titles, err := b.titles.list()
		require.NoError(t, err)
		assert.Equal(t, []string{"Solo"}, titles)
	})
}
