package model

import (
	"strings"
	"time"
)

// ParseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates (UTC midnight)
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
