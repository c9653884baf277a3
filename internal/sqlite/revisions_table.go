// This file implements the revisions table accessor: an append-only,
// time-ordered log of content snapshots keyed by title identifier.
package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// revisionSelect joins metadata, content, and titles into the wire shape.
const revisionSelect = `SELECT rm.document_id, t.title, rm.created_at_ms, rm.seq, rc.content
FROM revision_metadata rm
INNER JOIN revision_content rc ON rc.document_id = rm.document_id
INNER JOIN titles t ON t.title_id = rm.title_id`

// revisionsTable accesses the revision_metadata and revision_content tables.
// The store is a pure log: revisions are immutable once written, duplicate
// or out-of-order instants are accepted as supplied, and ordering is always
// (created_at_ms, seq). Equal instants break toward the highest seq for
// latest and as-of queries.
type revisionsTable struct {
	backend *Backend
}

// append inserts one new immutable revision inside the caller's transaction:
// a metadata row and its 1:1 content row. Returns the generated document ID.
func (rt *revisionsTable) append(tx *sql.Tx, titleID string, at time.Time, content string) (string, error) {
	documentID := generateUUID()

	_, err := tx.Exec(
		"INSERT INTO revision_metadata (document_id, title_id, created_at_ms) VALUES (?, ?, ?)",
		documentID, titleID, types.EpochMillis(at),
	)
	if err != nil {
		return "", &types.StorageError{Op: "inserting revision metadata", Err: err}
	}

	_, err = tx.Exec(
		"INSERT INTO revision_content (document_id, content) VALUES (?, ?)",
		documentID, content,
	)
	if err != nil {
		return "", &types.StorageError{Op: "inserting revision content", Err: err}
	}

	return documentID, nil
}

// listByTitle returns every revision for the title, ordered by ascending
// instant with insertion order breaking ties. Returns ErrTitleNotFound when
// the title has zero revisions: a registered title always holds at least one
// revision, so zero rows means the title does not exist.
func (rt *revisionsTable) listByTitle(title string) ([]types.Revision, error) {
	rows, err := rt.backend.db.Query(
		revisionSelect+" WHERE t.title = ? ORDER BY rm.created_at_ms ASC, rm.seq ASC",
		title,
	)
	if err != nil {
		return nil, &types.StorageError{Op: "listing revisions", Err: err}
	}
	defer rows.Close()

	var revisions []types.Revision
	for rows.Next() {
		rev, err := hydrateRevision(rows)
		if err != nil {
			return nil, &types.StorageError{Op: "scanning revision", Err: err}
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.StorageError{Op: "iterating revisions", Err: err}
	}

	if len(revisions) == 0 {
		return nil, types.ErrTitleNotFound
	}
	return revisions, nil
}

// latest returns the revision with the maximum (created_at_ms, seq) for the
// title. Returns ErrTitleNotFound when none exist.
func (rt *revisionsTable) latest(title string) (types.Revision, error) {
	row := rt.backend.db.QueryRow(
		revisionSelect+" WHERE t.title = ? ORDER BY rm.created_at_ms DESC, rm.seq DESC LIMIT 1",
		title,
	)
	rev, err := hydrateRevisionRow(row)
	switch {
	case err == nil:
		return rev, nil
	case errors.Is(err, sql.ErrNoRows):
		return types.Revision{}, types.ErrTitleNotFound
	default:
		return types.Revision{}, &types.StorageError{Op: "querying latest revision", Err: err}
	}
}

// asOf returns the revision with the greatest (created_at_ms, seq) not after
// the given instant. When every revision postdates the instant the title's
// earliest instant is fetched for the diagnostic; when the title itself is
// unknown the error is ErrTitleNotFound instead. There is no fallback to the
// earliest revision.
func (rt *revisionsTable) asOf(title string, at time.Time) (types.Revision, error) {
	row := rt.backend.db.QueryRow(
		revisionSelect+" WHERE t.title = ? AND rm.created_at_ms <= ? ORDER BY rm.created_at_ms DESC, rm.seq DESC LIMIT 1",
		title, types.EpochMillis(at),
	)
	rev, err := hydrateRevisionRow(row)
	switch {
	case err == nil:
		return rev, nil
	case errors.Is(err, sql.ErrNoRows):
		// Distinguish "title unknown" from "title exists, query too early".
	default:
		return types.Revision{}, &types.StorageError{Op: "querying as-of revision", Err: err}
	}

	earliest, err := rt.earliest(title)
	if err != nil {
		return types.Revision{}, err
	}
	return types.Revision{}, &types.NoRevisionAtTimestampError{
		Title:    title,
		Query:    at,
		Earliest: earliest.CreatedAt,
	}
}

// earliest returns the revision with the minimum (created_at_ms, seq) for
// the title. Returns ErrTitleNotFound when none exist.
func (rt *revisionsTable) earliest(title string) (types.Revision, error) {
	row := rt.backend.db.QueryRow(
		revisionSelect+" WHERE t.title = ? ORDER BY rm.created_at_ms ASC, rm.seq ASC LIMIT 1",
		title,
	)
	rev, err := hydrateRevisionRow(row)
	switch {
	case err == nil:
		return rev, nil
	case errors.Is(err, sql.ErrNoRows):
		return types.Revision{}, types.ErrTitleNotFound
	default:
		return types.Revision{}, &types.StorageError{Op: "querying earliest revision", Err: err}
	}
}

// hydrateRevision converts a row from sql.Rows into a Revision.
func hydrateRevision(rows *sql.Rows) (types.Revision, error) {
	var rev types.Revision
	var createdAtMs int64
	if err := rows.Scan(&rev.DocumentID, &rev.Title, &createdAtMs, &rev.Seq, &rev.Content); err != nil {
		return types.Revision{}, err
	}
	rev.CreatedAt = types.FromEpochMillis(createdAtMs)
	return rev, nil
}

// hydrateRevisionRow converts a single row into a Revision.
func hydrateRevisionRow(row *sql.Row) (types.Revision, error) {
	var rev types.Revision
	var createdAtMs int64
	if err := row.Scan(&rev.DocumentID, &rev.Title, &createdAtMs, &rev.Seq, &rev.Content); err != nil {
		return types.Revision{}, err
	}
	rev.CreatedAt = types.FromEpochMillis(createdAtMs)
	return rev, nil
}
