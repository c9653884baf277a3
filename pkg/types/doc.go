// Package types defines the document store entities (Title, Revision), the
// Store interface, wire timestamp handling, and the standard error kinds for
// the Scriptorium revision store.
package types
