package types

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoRevisionAtTimestampError(t *testing.T) {
	err := &NoRevisionAtTimestampError{
		Title:    "Gopher",
		Query:    time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
		Earliest: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("matches the sentinel kind", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrNoRevisionAtTimestamp)
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("as-of query: %w", err)
		assert.ErrorIs(t, wrapped, ErrNoRevisionAtTimestamp)

		var target *NoRevisionAtTimestampError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "Gopher", target.Title)
	})

	t.Run("message names the earliest instant", func(t *testing.T) {
		assert.Contains(t, err.Error(), "2023-01-01T00:00:00Z")
		assert.Contains(t, err.Error(), `"Gopher"`)
	})
}

func TestStorageError(t *testing.T) {
	cause := errors.New("database is locked")
	err := &StorageError{Op: "appending revision", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "appending revision")

	// A storage failure must not be mistaken for a recoverable kind.
	assert.NotErrorIs(t, err, ErrTitleNotFound)
	assert.NotErrorIs(t, err, ErrNoData)
}
