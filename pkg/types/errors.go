package types

import (
	"errors"
	"fmt"
	"time"
)

// Expected, caller-recoverable failure kinds. Every store operation surfaces
// absence and rejected writes as one of these, never as a generic error.
var (
	ErrTitleTooLong          = errors.New("title exceeds the maximum length of 50 characters")
	ErrTitleNotFound         = errors.New("title not found")
	ErrNoData                = errors.New("no titles in the store")
	ErrNoChanges             = errors.New("no changes detected in new content")
	ErrNoRevisionAtTimestamp = errors.New("no revision at or before timestamp")
)

// NoRevisionAtTimestampError reports an as-of query whose instant precedes
// every revision of an existing title. Earliest carries the first available
// instant for that title as diagnostic context.
type NoRevisionAtTimestampError struct {
	Title    string
	Query    time.Time
	Earliest time.Time
}

func (e *NoRevisionAtTimestampError) Error() string {
	return fmt.Sprintf(
		"no revisions for title %q at or before %s; the earliest revision was created at %s",
		e.Title, FormatInstant(e.Query), FormatInstant(e.Earliest),
	)
}

// Unwrap makes errors.Is(err, ErrNoRevisionAtTimestamp) hold for callers
// that match on the kind rather than the diagnostic fields.
func (e *NoRevisionAtTimestampError) Unwrap() error {
	return ErrNoRevisionAtTimestamp
}

// StorageError marks an infrastructure failure from the backing store. It is
// distinct from the recoverable kinds above and always wraps the underlying
// driver error so callers can inspect it.
type StorageError struct {
	Op  string // operation that failed, e.g. "appending revision"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
