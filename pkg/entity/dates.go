package entity

import (
	"strings"
	"time"

	errorvalues "github.com/limbo/franklin/internal/error_values"
)

const DateLayout = "2006-01-02"

// NormalizeDate drops the time of day and returns local midnight of t's calendar day.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// ParseRecordDate accepts YYYY-MM-DD or an RFC 3339 timestamp.
// Timestamps are converted to server-local time before the day is taken.
func ParseRecordDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NormalizeDate(t.Local()), nil
	}
	return time.Time{}, &errorvalues.InvalidDateError{Value: s}
}

func FormatRecordDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ISOWeek returns the ISO-8601 year and week number the day falls in.
func ISOWeek(t time.Time) (year, week int) {
	return NormalizeDate(t).ISOWeek()
}
