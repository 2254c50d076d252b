package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// formatTime formats t in a form that sorts lexically in time order.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}

// TranslationKey returns the cache key of text translated from one language
// to another: the hex xxHash64 of from, to and text separated by NUL bytes.
func TranslationKey(text, from, to string) string {
	d := xxhash.New()
	_, _ = d.WriteString(from)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(to)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(text)
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, d.Sum64())
	return hex.EncodeToString(b)
}
