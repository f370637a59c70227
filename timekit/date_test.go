package timekit

import (
	"errors"
	"testing"
	"time"
)

func TestNewDateValidates(t *testing.T) {
	if _, err := NewDate(2025, time.February, 29); !errors.Is(err, ErrInvalidCalendarInput) {
		t.Errorf("Expected ErrInvalidCalendarInput for Feb 29 2025, got %v", err)
	}
	if _, err := NewDate(2024, time.February, 29); err != nil {
		t.Errorf("Feb 29 2024 should be valid, got %v", err)
	}
	if _, err := NewDate(2025, time.April, 31); !errors.Is(err, ErrInvalidCalendarInput) {
		t.Errorf("Expected ErrInvalidCalendarInput for Apr 31, got %v", err)
	}
	if _, err := NewDate(2025, time.April, 0); !errors.Is(err, ErrInvalidCalendarInput) {
		t.Errorf("Expected ErrInvalidCalendarInput for day 0, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("Failed to parse date: %v", err)
	}
	if d.Year != 2024 || d.Month != time.January || d.Day != 15 {
		t.Errorf("Parsed wrong date: %v", d)
	}
	if got := d.String(); got != "2024-01-15" {
		t.Errorf("String() = %s", got)
	}

	if _, err := ParseDate("15/01/2024"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput, got %v", err)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := mustDate(t, 2025, time.January, 31)

	if got := d.AddDays(1); got != mustDate(t, 2025, time.February, 1) {
		t.Errorf("AddDays(1) = %v", got)
	}
	if got := d.AddDays(-31); got != mustDate(t, 2024, time.December, 31) {
		t.Errorf("AddDays(-31) = %v", got)
	}

	// Month shift clamps the day into the target month.
	if got := d.AddMonths(1); got != mustDate(t, 2025, time.February, 28) {
		t.Errorf("AddMonths(1) = %v, want 2025-02-28", got)
	}
	if got := d.AddMonths(-2); got != mustDate(t, 2024, time.November, 30) {
		t.Errorf("AddMonths(-2) = %v, want 2024-11-30", got)
	}

	leap := mustDate(t, 2024, time.February, 29)
	if got := leap.AddYears(1); got != mustDate(t, 2025, time.February, 28) {
		t.Errorf("AddYears(1) from leap day = %v, want 2025-02-28", got)
	}

	if got := mustDate(t, 2025, time.June, 1).DaysUntil(mustDate(t, 2025, time.June, 11)); got != 10 {
		t.Errorf("DaysUntil = %d, want 10", got)
	}
}

func TestTimeValidation(t *testing.T) {
	if _, err := NewTime(24, 0, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for hour 24, got %v", err)
	}
	if _, err := NewTime(-1, 0, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for hour -1, got %v", err)
	}
	if _, err := NewTime(23, 59, 59); err != nil {
		t.Errorf("23:59:59 should be valid, got %v", err)
	}
}

func TestParseTime(t *testing.T) {
	tm, err := ParseTime("14:30:15")
	if err != nil {
		t.Fatalf("Failed to parse time: %v", err)
	}
	if tm != (Time{14, 30, 15}) {
		t.Errorf("Parsed wrong time: %v", tm)
	}

	// HH:MM shorthand is accepted.
	tm, err = ParseTime("14:30")
	if err != nil {
		t.Fatalf("Failed to parse HH:MM: %v", err)
	}
	if tm != (Time{14, 30, 0}) {
		t.Errorf("Parsed wrong time: %v", tm)
	}

	if _, err := ParseTime("25:00"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput for hour 25, got %v", err)
	}
}

func TestTimeRound(t *testing.T) {
	tm := Time{14, 22, 40}
	if got := tm.Round(15); got != (Time{14, 15, 0}) {
		t.Errorf("Round(15) = %v", got)
	}
	if got := tm.Round(30); got != (Time{14, 30, 0}) {
		t.Errorf("Round(30) = %v", got)
	}

	// Rounding never crosses midnight.
	late := Time{23, 59, 0}
	if got := late.Round(30); got != (Time{23, 30, 0}) {
		t.Errorf("Round near midnight = %v", got)
	}
}

func TestDateTime(t *testing.T) {
	dt, err := ParseDateTime("2025-06-10 09:30:00")
	if err != nil {
		t.Fatalf("Failed to parse datetime: %v", err)
	}
	if dt.Date != mustDate(t, 2025, time.June, 10) || dt.Time != (Time{9, 30, 0}) {
		t.Errorf("Parsed wrong datetime: %v", dt)
	}
	if got := dt.String(); got != "2025-06-10 09:30:00" {
		t.Errorf("String() = %s", got)
	}

	// Second arithmetic carries across day boundaries.
	end := dt.AddSeconds(15*3600 + 30*60)
	if end.Date != mustDate(t, 2025, time.June, 11) || end.Time != (Time{1, 0, 0}) {
		t.Errorf("AddSeconds carried wrong: %v", end)
	}
	if got := dt.SecondsUntil(end); got != 15*3600+30*60 {
		t.Errorf("SecondsUntil = %d", got)
	}

	swapped := dt.WithTime(Time{17, 0, 0})
	if swapped.Date != dt.Date || swapped.Time != (Time{17, 0, 0}) {
		t.Errorf("WithTime = %v", swapped)
	}
}
