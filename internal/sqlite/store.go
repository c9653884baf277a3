// This file implements the Store operations on the Backend, composing the
// titles and revisions table accessors.
package sqlite

import (
	"time"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// ListTitles returns all registered titles in insertion order.
// Returns ErrNoData when the store holds zero titles.
func (b *Backend) ListTitles() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.titles.list()
}

// ListRevisions returns every revision for the title, ordered by ascending
// creation instant. Returns ErrTitleNotFound for an unregistered title.
func (b *Backend) ListRevisions(title string) ([]types.Revision, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.revisions.listByTitle(title)
}

// Latest returns the revision with the maximum creation instant for the
// title. Returns ErrTitleNotFound for an unregistered title.
func (b *Backend) Latest(title string) (types.Revision, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Revision{}, types.ErrStoreDetached
	}
	return b.revisions.latest(title)
}

// AsOf returns the most recent revision not after the given instant.
func (b *Backend) AsOf(title string, at time.Time) (types.Revision, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Revision{}, types.ErrStoreDetached
	}
	return b.revisions.asOf(title, at)
}

// PostRevision appends a new revision to an existing title. The title is
// resolved through the latest-revision lookup, so a missing title surfaces
// as that lookup's ErrTitleNotFound. Content equal to the current latest
// revision is rejected with ErrNoChanges and writes nothing. PostRevision
// never creates a title; only SaveDocument may.
func (b *Backend) PostRevision(title string, at time.Time, content string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	latest, err := b.revisions.latest(title)
	if err != nil {
		return "", err
	}
	if latest.Content == content {
		return "", types.ErrNoChanges
	}

	titleID, err := b.titles.resolve(title)
	if err != nil {
		return "", err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return "", &types.StorageError{Op: "beginning transaction", Err: err}
	}
	defer tx.Rollback()

	documentID, err := b.revisions.append(tx, titleID, at, content)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", &types.StorageError{Op: "committing revision", Err: err}
	}
	return documentID, nil
}

// SaveDocument resolves or creates the title, then appends a revision. The
// title row and the revision are written in one transaction, so a title
// never exists without at least one revision. Returns ErrTitleTooLong
// before any row is written.
func (b *Backend) SaveDocument(title string, at time.Time, content string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}
	return b.saveDocument(title, at, content)
}

// saveDocument is the shared resolve-or-create + append path. The caller
// must hold b.mu (read or write lock) and have verified attachment, which
// lets first-run seeding reuse it from inside Attach.
func (b *Backend) saveDocument(title string, at time.Time, content string) (string, error) {
	tx, err := b.db.Begin()
	if err != nil {
		return "", &types.StorageError{Op: "beginning transaction", Err: err}
	}
	defer tx.Rollback()

	titleID, err := b.titles.resolveOrCreate(tx, title)
	if err != nil {
		return "", err
	}

	documentID, err := b.revisions.append(tx, titleID, at, content)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", &types.StorageError{Op: "committing document", Err: err}
	}
	return documentID, nil
}
