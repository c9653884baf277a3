package types

import (
	"errors"
	"time"
)

// Revision instants are stored as epoch milliseconds so ordering is numeric
// rather than lexical; the formatted string exists only on the wire. Parsing
// accepts RFC 3339 and a zone-less fallback layout (interpreted as UTC) so
// query paths like /documents/Title/2023-01-01T12:00:00 work without URL
// escaping a zone offset.
const (
	wireLayout         = time.RFC3339
	wireLayoutNoZone   = "2006-01-02T15:04:05"
	wireLayoutDateOnly = "2006-01-02"
)

// ErrBadTimestamp reports a wire timestamp that matches none of the accepted
// layouts.
var ErrBadTimestamp = errors.New("unrecognized timestamp format")

// ParseInstant parses a wire timestamp. The result is truncated to
// millisecond precision, matching the stored representation.
func ParseInstant(s string) (time.Time, error) {
	for _, layout := range []string{wireLayout, wireLayoutNoZone, wireLayoutDateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Millisecond), nil
		}
	}
	return time.Time{}, ErrBadTimestamp
}

// FormatInstant renders an instant in the wire format (RFC 3339, UTC).
func FormatInstant(t time.Time) string {
	return t.UTC().Format(wireLayout)
}

// EpochMillis converts an instant to the stored epoch-millisecond form.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromEpochMillis converts a stored epoch-millisecond value back to a UTC
// instant.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
