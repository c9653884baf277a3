// Package sqlite implements the SQLite storage backend for Scriptorium.
package sqlite

// Schema DDL. Revision instants are stored as epoch milliseconds so ordering
// is numeric; seq is the insertion counter that breaks equal-instant ties.
// Content lives in its own table, 1:1 with metadata, so large bodies grow
// independently of the metadata rows.
const (
	createTitles = `CREATE TABLE titles (
    title_id TEXT PRIMARY KEY,
    title TEXT NOT NULL UNIQUE
);`

	createRevisionMetadata = `CREATE TABLE revision_metadata (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id TEXT NOT NULL UNIQUE,
    title_id TEXT NOT NULL,
    created_at_ms INTEGER NOT NULL,
    FOREIGN KEY (title_id) REFERENCES titles(title_id)
);`

	createRevisionContent = `CREATE TABLE revision_content (
    document_id TEXT PRIMARY KEY,
    content TEXT NOT NULL,
    FOREIGN KEY (document_id) REFERENCES revision_metadata(document_id)
);`
)

// Index DDL for the revision query paths (latest, as-of, listing).
const (
	idxRevisionTitleInstant = `CREATE INDEX idx_revision_title_instant ON revision_metadata(title_id, created_at_ms, seq);`
	idxRevisionDocument     = `CREATE INDEX idx_revision_document ON revision_metadata(document_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createTitles,
	createRevisionMetadata,
	createRevisionContent,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxRevisionTitleInstant,
	idxRevisionDocument,
}
