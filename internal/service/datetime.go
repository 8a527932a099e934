package service

import (
	"fmt"
	"time"
)

// Accepted request datetime layouts, tried in order.  Clients send
// either full RFC3339 or the zone-less variants.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDatetime parses a request datetime.  Zone-less values are taken
// as UTC, matching how the database stores them.
func ParseDatetime(s string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid datetime %q", ErrValidation, s)
}
