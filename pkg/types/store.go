package types

import "time"

// Store is the operation contract through which the HTTP layer and the CLI
// consume the revision store. Callers attach to a backend, perform
// operations, and detach when done.
type Store interface {
	// Attach connects the store to the backend described by config,
	// creating the schema and seed data on first run. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// ListTitles returns all registered titles in a stable order.
	// Returns ErrNoData when the store holds zero titles.
	ListTitles() ([]string, error)

	// ListRevisions returns every revision for the title, ordered by
	// ascending creation instant (insertion order breaks ties).
	// Returns ErrTitleNotFound for an unregistered title.
	ListRevisions(title string) ([]Revision, error)

	// Latest returns the revision with the maximum creation instant.
	// Returns ErrTitleNotFound for an unregistered title.
	Latest(title string) (Revision, error)

	// AsOf returns the most recent revision not after the given instant.
	// Returns *NoRevisionAtTimestampError when the title exists but every
	// revision postdates the instant, and ErrTitleNotFound when the title
	// is unregistered. There is no fallback to the earliest revision.
	AsOf(title string, at time.Time) (Revision, error)

	// PostRevision appends a new revision to an existing title. It never
	// creates a title: a missing title surfaces as the ErrTitleNotFound
	// from the latest-revision lookup. Content identical to the current
	// latest revision is rejected with ErrNoChanges and writes nothing.
	// Returns the new revision's document ID.
	PostRevision(title string, at time.Time, content string) (string, error)

	// SaveDocument resolves or creates the title, then appends a revision.
	// This is the only path that may create a title; the title row and the
	// first revision are written in one transaction. Used by seeding and
	// document-file loading.
	// Returns ErrTitleTooLong before any row is written.
	SaveDocument(title string, at time.Time, content string) (string, error)
}
