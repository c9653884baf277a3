package types

import "time"

// MaxTitleLen is the maximum number of characters allowed in a title.
const MaxTitleLen = 50

// Title maps a human-readable document name to its stable internal
// identifier. Titles are created exactly once per distinct text, on first
// revision write, and are never updated or deleted.
type Title struct {
	TitleID string `json:"title_id"` // UUID v7, generated on first use.
	Text    string `json:"title"`    // Unique across the store, at most MaxTitleLen characters.
}

// Revision is one immutable, fully-specified snapshot of a document's
// content at a point in time. A title's current state is always derived:
// it is the revision with the maximum (CreatedAt, Seq) ordering key.
type Revision struct {
	DocumentID string    `json:"document_id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"creation_timestamp"`
	Seq        int64     `json:"-"` // Insertion counter; breaks CreatedAt ties deterministically.
	Content    string    `json:"content"`
}

// ValidateTitle checks the title text against the length limit.
// Returns ErrTitleTooLong for text longer than MaxTitleLen characters.
// The limit counts characters, not bytes.
func ValidateTitle(text string) error {
	if len([]rune(text)) > MaxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}
