package form

import (
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// LocalLayout is the value format of an HTML datetime-local input.
const LocalLayout = "2006-01-02T15:04"

var (
	// ErrInvalidID is returned when an id field is not a positive integer.
	ErrInvalidID = errors.New("must be a numeric id")
	// ErrInvalidTime is returned when a start time cannot be parsed.
	ErrInvalidTime = errors.New("unrecognised date/time")
)

// ParseStartTime accepts RFC 3339, datetime-local values and the
// loose formats understood by jinzhu/now ("2019-05-21 21:30",
// "2019-05-21", ...).  Values without a zone are taken as UTC.  An
// empty string yields the zero time.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(LocalLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := now.ParseInLocation(time.UTC, s)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return t.UTC(), nil
}
