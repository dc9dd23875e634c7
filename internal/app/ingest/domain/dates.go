package domain

import (
	"fmt"
	"time"
)

// dateLayouts are the timestamp shapes accepted in CSV date columns.
// The source exports carry plain dates or space-separated datetimes;
// RFC3339 is accepted for exports that were already timezone-aware.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate interprets a CSV cell as a timestamp. Bare dates parse to
// midnight UTC. Returns ErrMalformedDate when no layout matches; a
// malformed date aborts the load rather than storing a silently wrong
// value.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
}
