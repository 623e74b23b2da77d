package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when an input cannot be turned into an instant.
var ErrInvalidDate = errors.New("invalid date")

// zonedLayouts carry their own offset; the instant is fixed by the string.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04-0700",
}

// localLayouts have no offset and are read as wall-clock time in the target location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Resolve converts a date-like value (an ISO-8601 string, a time.Time or a
// *time.Time) into an instant expressed in loc.
func Resolve(input any, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	switch v := input.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return v.In(loc), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidDate)
		}
		return Resolve(*v, loc)
	case string:
		return ParseISO(v, loc)
	case nil:
		return time.Time{}, fmt.Errorf("%w: nil input", ErrInvalidDate)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, input)
	}
}

// ParseISO parses an ISO-8601 timestamp. Strings without an offset are
// interpreted as wall-clock time in loc.
func ParseISO(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not an ISO-8601 timestamp", ErrInvalidDate, s)
}

// ZeroPad2 renders n with at least two digits
func ZeroPad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + string(rune('0'+n))
	}
	return fmt.Sprintf("%d", n)
}
