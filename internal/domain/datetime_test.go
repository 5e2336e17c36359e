package domain

import (
	"testing"
	"time"
)

func TestCombineDateTime(t *testing.T) {
	cases := []struct {
		date, clock, want string
	}{
		{"2024-01-15", "14:30", "2024-01-15T14:30:00Z"},
		{"2024-01-15", "14:30:05", "2024-01-15T14:30:05Z"},
		{"2024-12-31", "00:00", "2024-12-31T00:00:00Z"},
	}
	for _, tc := range cases {
		got, err := CombineDateTime(tc.date, tc.clock)
		if err != nil {
			t.Errorf("CombineDateTime(%q, %q): %v", tc.date, tc.clock, err)
			continue
		}
		if got != tc.want {
			t.Errorf("CombineDateTime(%q, %q) = %q, want %q", tc.date, tc.clock, got, tc.want)
		}
	}

	bad := [][2]string{
		{"15-01-2024", "14:30"},
		{"2024-01-15", "2pm"},
		{"", "14:30"},
		{"2024-01-15", ""},
	}
	for _, tc := range bad {
		if _, err := CombineDateTime(tc[0], tc[1]); err == nil {
			t.Errorf("CombineDateTime(%q, %q) succeeded, want error", tc[0], tc[1])
		}
	}
}

func TestCombineDateTimeIsLexicographicallySortable(t *testing.T) {
	earlier, _ := CombineDateTime("2024-01-15", "09:05")
	later, _ := CombineDateTime("2024-01-15", "10:00")
	if !(earlier < later) {
		t.Fatalf("%q should compare below %q", earlier, later)
	}
}

func TestParseDateTime(t *testing.T) {
	accepted := []string{
		"2024-01-15T14:30:00Z",
		"2024-01-15T14:30:00.000Z",
		"2024-01-15T14:30:00+05:30",
		"2024-01-15T14:30:00",
		"2024-01-15T14:30",
	}
	for _, s := range accepted {
		if _, err := ParseDateTime(s); err != nil {
			t.Errorf("ParseDateTime(%q): %v", s, err)
		}
	}
	if _, err := ParseDateTime("garbage"); err == nil {
		t.Error("ParseDateTime accepted garbage")
	}
}

func TestEffectiveDate(t *testing.T) {
	createdAt := time.Date(2024, 3, 20, 23, 45, 0, 0, time.UTC)

	if got := EffectiveDate("2024-01-15", "14:30", createdAt); got != "2024-01-15" {
		t.Fatalf("explicit date: got %q", got)
	}
	// Missing or malformed date/time falls back to the creation timestamp.
	if got := EffectiveDate("", "", createdAt); got != "2024-03-20" {
		t.Fatalf("fallback: got %q", got)
	}
	if got := EffectiveDate("2024-01-15", "", createdAt); got != "2024-03-20" {
		t.Fatalf("date without time: got %q", got)
	}
	if got := EffectiveDate("not-a-date", "14:30", createdAt); got != "2024-03-20" {
		t.Fatalf("bad date: got %q", got)
	}
}
