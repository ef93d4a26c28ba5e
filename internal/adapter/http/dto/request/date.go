package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC3339")

// ParseDate accepts a calendar date, read in loc, or a full RFC3339 timestamp.
// An empty value yields nil.
func ParseDate(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(time.DateOnly, value, loc); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return &t, nil
	}
	return nil, ErrInvalidDate
}
