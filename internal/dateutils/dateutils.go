// Package dateutils provides permissive date and timestamp parsing for the
// raw cell values found in uploaded trade files.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Output layouts mandated by the report schema.
const (
	DateLayoutISO         = "2006-01-02"
	DateTimeLayoutUTC     = "2006-01-02T15:04:05.000Z"
	DateTimeLayoutSeconds = "2006-01-02T15:04:05Z"
)

// CommonFormats is the ordered list of layouts tried when parsing raw cell
// values. Earlier entries win, so unambiguous layouts come first.
var CommonFormats = []string{
	time.RFC3339Nano,
	DateTimeLayoutUTC,
	DateTimeLayoutSeconds,
	"2006-01-02 15:04:05",
	DateLayoutISO,
	"02.01.2006 15:04:05",
	"02.01.2006",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"2-Jan-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses internal whitespace in a raw value.
func CleanDateString(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ParseDate attempts to parse a raw value using the common formats.
// Returns the parsed time and the layout that matched.
func ParseDate(raw string) (time.Time, string, error) {
	cleaned := CleanDateString(raw)
	if cleaned == "" {
		return time.Time{}, "", fmt.Errorf("empty date value")
	}
	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", raw)
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.UTC().Format(DateLayoutISO)
}

// ToISODateTime formats a time as a full UTC timestamp with milliseconds,
// the form auth.016 expects for execution and trade timestamps.
func ToISODateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayoutUTC)
}
