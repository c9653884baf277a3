// Package sqlite implements the SQLite storage backend for Scriptorium.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface on a SQLite database. Titles and
// revisions live in their own table accessors; the Store operations in
// store.go compose the two.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	titles    *titlesTable
	revisions *revisionsTable
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, creates the schema when the database file is
// new, and loads the built-in seed set on first run when SeedOnInit is set.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = types.DefaultDataDir
	}
	dbFile := config.DBFile
	if dbFile == "" {
		dbFile = types.DefaultDBFile
	}
	config.DataDir = dataDir
	config.DBFile = dbFile

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return &types.StorageError{Op: "creating data directory", Err: err}
	}

	dbPath := filepath.Join(dataDir, dbFile)
	_, statErr := os.Stat(dbPath)
	fresh := os.IsNotExist(statErr)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return &types.StorageError{Op: "opening database", Err: err}
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return &types.StorageError{Op: "enabling foreign keys", Err: err}
	}

	if fresh {
		if err := createSchema(db); err != nil {
			db.Close()
			os.Remove(dbPath)
			return err
		}
	}

	b.db = db
	b.config = config
	b.titles = &titlesTable{backend: b}
	b.revisions = &revisionsTable{backend: b}
	b.attached = true

	if config.SeedOnInit {
		if err := b.seedBuiltInDocuments(); err != nil {
			b.attached = false
			db.Close()
			b.db = nil
			return fmt.Errorf("seeding built-in documents: %w", err)
		}
	}

	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return &types.StorageError{Op: "closing database", Err: err}
		}
		b.db = nil
	}

	b.attached = false
	b.titles = nil
	b.revisions = nil

	return nil
}

// createSchema executes the table and index DDL on a fresh database.
func createSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return &types.StorageError{Op: "creating schema", Err: err}
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return &types.StorageError{Op: "creating indexes", Err: err}
		}
	}
	return nil
}

// generateUUID generates a new UUID v7 for entity IDs. UUID v7 sorts by
// creation time, so ordering titles by title_id yields insertion order.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
