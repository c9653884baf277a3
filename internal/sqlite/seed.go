// This file implements built-in document seeding on first attach.
package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// builtInRevision describes one revision of a seeded document.
type builtInRevision struct {
	at      string // wire-format instant
	content string
}

// builtInDocument describes a document to seed on first startup.
type builtInDocument struct {
	title     string
	revisions []builtInRevision
}

// builtInDocuments defines the documents seeded on first startup. Titles get
// several revisions at spread-out instants so the as-of query paths are
// exercised out of the box.
var builtInDocuments = []builtInDocument{
	{
		title: "Ada Lovelace",
		revisions: []builtInRevision{
			{"2023-01-01T00:00:00Z", "Ada Lovelace was an English mathematician."},
			{"2023-01-02T00:00:00Z", "Ada Lovelace was an English mathematician and writer, chiefly known for her work on the Analytical Engine."},
			{"2023-02-15T09:30:00Z", "Ada Lovelace (1815-1852) was an English mathematician and writer, chiefly known for her work on Charles Babbage's Analytical Engine. She is often regarded as the first computer programmer."},
		},
	},
	{
		title: "Go (programming language)",
		revisions: []builtInRevision{
			{"2023-01-10T12:00:00Z", "Go is a statically typed, compiled programming language designed at Google."},
			{"2023-03-01T08:00:00Z", "Go is a statically typed, compiled programming language designed at Google. It is syntactically similar to C, with memory safety, garbage collection, and structural typing."},
		},
	},
	{
		title: "SQLite",
		revisions: []builtInRevision{
			{"2023-01-20T00:00:00Z", "SQLite is a database engine written in the C language."},
			{"2023-01-20T18:45:00Z", "SQLite is a database engine written in the C language. It is not a standalone app; rather, it is a library that software developers embed in their apps."},
		},
	},
}

// seedBuiltInDocuments saves the built-in documents if the titles table is
// empty (first run). Seeding is idempotent: a restart against an existing
// database writes nothing. The caller must hold b.mu.
func (b *Backend) seedBuiltInDocuments() error {
	var count int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM titles").Scan(&count); err != nil {
		return &types.StorageError{Op: "counting titles for seed", Err: err}
	}
	if count > 0 {
		return nil
	}

	for _, doc := range builtInDocuments {
		for _, rev := range doc.revisions {
			at, err := types.ParseInstant(rev.at)
			if err != nil {
				return fmt.Errorf("parsing seed instant %q for %q: %w", rev.at, doc.title, err)
			}
			if _, err := b.saveDocument(doc.title, at, rev.content); err != nil {
				return fmt.Errorf("seeding document %q: %w", doc.title, err)
			}
		}
	}
	return nil
}

// seededAt reports the instants used by the built-in seed set, newest first
// per document. Exposed for tests.
func seededAt(title string) []time.Time {
	for _, doc := range builtInDocuments {
		if doc.title != title {
			continue
		}
		instants := make([]time.Time, 0, len(doc.revisions))
		for i := len(doc.revisions) - 1; i >= 0; i-- {
			at, err := types.ParseInstant(doc.revisions[i].at)
			if err != nil {
				continue
			}
			instants = append(instants, at)
		}
		return instants
	}
	return nil
}
