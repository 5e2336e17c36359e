// internal/domain/datetime.go
package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"

	clockLayout        = "15:04"
	clockSecondsLayout = "15:04:05"
)

// dateTimeLayouts covers the ISO shapes the API stores and accepts.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// CombineDateTime joins a date ("2024-01-15") and a time ("14:30" or
// "14:30:05") into a fixed-width UTC ISO-8601 string. Fixed width keeps
// lexicographic comparison equivalent to chronological order.
func CombineDateTime(date, clock string) (string, error) {
	for _, layout := range []string{DateLayout + "T" + clockSecondsLayout, DateLayout + "T" + clockLayout} {
		if t, err := time.Parse(layout, date+"T"+clock); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("invalid date or time: %q %q", date, clock)
}

// ParseDateTime parses a stored or caller-supplied dateTime string.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid dateTime: %q", s)
}

// EffectiveDate returns the calendar date used for range filtering: the
// explicit date+time when both are present, otherwise the creation timestamp.
func EffectiveDate(date, clock string, createdAt time.Time) string {
	if date != "" && clock != "" {
		if dt, err := CombineDateTime(date, clock); err == nil {
			return dt[:len(DateLayout)]
		}
	}
	return createdAt.UTC().Format(DateLayout)
}
