// This file implements loading documents from a JSON file into the store.
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// documentRecord is one entry in a document file: a JSON array of
// title/instant/content triples.
type documentRecord struct {
	Title             string `json:"title"`
	CreationTimestamp string `json:"creation_timestamp"`
	Content           string `json:"content"`
}

// LoadDocumentsFile reads a JSON document file and saves every record
// through the resolve-or-create path, creating titles as needed. The file is
// user-supplied, so a malformed record fails the load with a wrapped error
// rather than being skipped. Records already loaded before the failure
// remain; rerunning the load appends new revisions for them.
// Returns the number of records saved.
func (b *Backend) LoadDocumentsFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading document file: %w", err)
	}

	var records []documentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parsing document file %s: %w", path, err)
	}

	for i, rec := range records {
		at, err := types.ParseInstant(rec.CreationTimestamp)
		if err != nil {
			return i, fmt.Errorf("record %d (%q): %w", i, rec.Title, err)
		}
		if _, err := b.SaveDocument(rec.Title, at, rec.Content); err != nil {
			return i, fmt.Errorf("record %d (%q): %w", i, rec.Title, err)
		}
	}
	return len(records), nil
}
