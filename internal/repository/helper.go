package repository

import (
	"fmt"
	"time"
)

// storedDateLayouts are tried in order when reading a date column back.
var storedDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
}

// ParseTime parses a stored calendar date and returns it as midnight UTC.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range storedDateLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date %q", str)
}
