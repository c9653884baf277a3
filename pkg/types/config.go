package types

import (
	"errors"
	"strings"
)

// Config holds backend parameters for Store.Attach.
type Config struct {
	DataDir    string `json:"data_dir" yaml:"data_dir"`         // Directory holding the database file. Created on attach.
	DBFile     string `json:"db_file" yaml:"db_file"`           // Database filename inside DataDir.
	SeedOnInit bool   `json:"seed_on_init" yaml:"seed_on_init"` // Load the built-in seed set on first run.
}

// Default config values applied by Validate-passing Attach when fields are
// left empty.
const (
	DefaultDataDir = ".scriptorium"
	DefaultDBFile  = "scriptorium.db"
)

// Config validation errors.
var (
	ErrDBFileInvalid = errors.New("db_file must be a bare filename, not a path")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if strings.ContainsAny(c.DBFile, `/\`) {
		return ErrDBFileInvalid
	}
	return nil
}
