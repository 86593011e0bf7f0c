// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants. Transaction dates are stored as ISO-8601 strings,
// so their YYYY-MM-DD prefixes compare correctly as plain strings.
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutFull = "2006-01-02 15:04:05"
)

// commonFormats is the list of layouts tried when parsing user-supplied dates.
var commonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	time.RFC3339,
}

// ParseDateString attempts to parse a date string using the accepted layouts.
func ParseDateString(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range commonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// IsISODate reports whether the string starts with a well-formed
// YYYY-MM-DD prefix.
func IsISODate(dateStr string) bool {
	if len(dateStr) < 10 {
		return false
	}
	_, err := time.Parse(DateLayoutISO, dateStr[:10])
	return err == nil
}

// StartOfMonth returns the first day of the given month.
func StartOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of the given month, accounting for
// month length and year boundaries.
func EndOfMonth(year int, month time.Month) time.Time {
	return StartOfMonth(year, month).AddDate(0, 1, -1)
}

// CutoffISODate returns the ISO date string for the given number of days
// before now. Transactions with date prefixes >= the cutoff fall inside
// the window.
func CutoffISODate(now time.Time, days int) string {
	return ToISODate(now.AddDate(0, 0, -days))
}
