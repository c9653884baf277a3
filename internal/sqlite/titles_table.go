// This file implements the titles table accessor: the registry mapping a
// human-readable title to its stable internal identifier.
package sqlite

import (
	"database/sql"
	"errors"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// titlesTable accesses the titles table. A title is registered exactly once
// per distinct text, on first revision write, and is never updated or
// deleted.
type titlesTable struct {
	backend *Backend
}

// resolveOrCreate looks up the title text and returns its identifier,
// generating and inserting a new one when the text is absent. The length
// guard runs before any lookup or insert. Runs inside the caller's
// transaction so a title row never outlives a failed first revision.
func (tt *titlesTable) resolveOrCreate(tx *sql.Tx, text string) (string, error) {
	if err := types.ValidateTitle(text); err != nil {
		return "", err
	}

	var id string
	err := tx.QueryRow("SELECT title_id FROM titles WHERE title = ?", text).Scan(&id)
	switch {
	case err == nil:
		return id, nil
	case errors.Is(err, sql.ErrNoRows):
		// First use of this text; fall through to the insert.
	default:
		return "", &types.StorageError{Op: "looking up title", Err: err}
	}

	id = generateUUID()
	if _, err := tx.Exec("INSERT INTO titles (title_id, title) VALUES (?, ?)", id, text); err != nil {
		return "", &types.StorageError{Op: "inserting title", Err: err}
	}
	return id, nil
}

// resolve looks up the title text with no side effects.
// Returns ErrTitleNotFound when the text is not registered.
func (tt *titlesTable) resolve(text string) (string, error) {
	var id string
	err := tt.backend.db.QueryRow("SELECT title_id FROM titles WHERE title = ?", text).Scan(&id)
	switch {
	case err == nil:
		return id, nil
	case errors.Is(err, sql.ErrNoRows):
		return "", types.ErrTitleNotFound
	default:
		return "", &types.StorageError{Op: "resolving title", Err: err}
	}
}

// list returns all registered titles ordered by title_id. Identifiers are
// UUID v7, so this is insertion order. Returns ErrNoData when the store
// holds zero titles.
func (tt *titlesTable) list() ([]string, error) {
	rows, err := tt.backend.db.Query("SELECT title FROM titles ORDER BY title_id")
	if err != nil {
		return nil, &types.StorageError{Op: "listing titles", Err: err}
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, &types.StorageError{Op: "scanning title", Err: err}
		}
		titles = append(titles, text)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.StorageError{Op: "iterating titles", Err: err}
	}

	if len(titles) == 0 {
		return nil, types.ErrNoData
	}
	return titles, nil
}
