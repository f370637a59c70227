package timekit

import (
	"errors"
	"testing"
)

func TestDurationRoundTrip(t *testing.T) {
	cases := [][3]int{
		{0, 0, 0},
		{0, 0, 59},
		{0, 59, 0},
		{12, 30, 30},
		{99, 59, 59},
	}
	for _, c := range cases {
		d, err := NewDuration(c[0], c[1], c[2])
		if err != nil {
			t.Fatalf("NewDuration(%v) returned error: %v", c, err)
		}
		h, m, s := d.Components()
		if h != c[0] || m != c[1] || s != c[2] {
			t.Errorf("Components() = (%d, %d, %d), want %v", h, m, s, c)
		}
	}
}

func TestDurationNormalizes(t *testing.T) {
	d, err := NewDuration(1, 90, 120)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := d.String(); got != "02:32:00" {
		t.Errorf("Expected 02:32:00, got %s", got)
	}
}

func TestDurationOutOfRange(t *testing.T) {
	if _, err := NewDuration(100, 0, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for 100 hours, got %v", err)
	}
	if _, err := NewDuration(99, 60, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for normalized overflow, got %v", err)
	}
	if _, err := NewDuration(-1, 0, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for negative hours, got %v", err)
	}
	if _, err := NewDuration(0, 0, -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for negative seconds, got %v", err)
	}
}

func TestDurationClamp(t *testing.T) {
	max, _ := NewDuration(99, 59, 59)
	hour, _ := NewDuration(1, 0, 0)

	if got := max.Add(hour); got != max {
		t.Errorf("Adding past the cap should saturate, got %s", got)
	}

	small, _ := NewDuration(0, 30, 0)
	if got := small.Sub(hour); !got.IsZero() {
		t.Errorf("Subtracting below zero should floor at zero, got %s", got)
	}
}

func TestDurationFormat(t *testing.T) {
	d, _ := NewDuration(12, 30, 30)
	if got := d.String(); got != "12:30:30" {
		t.Errorf("Expected 12:30:30, got %s", got)
	}

	d, _ = NewDuration(1, 2, 3)
	if got := d.String(); got != "01:02:03" {
		t.Errorf("Expected zero padding, got %s", got)
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("12:30:30")
	if err != nil {
		t.Fatalf("Failed to parse duration: %v", err)
	}
	if d.Seconds() != 12*3600+30*60+30 {
		t.Errorf("Parsed wrong value: %d seconds", d.Seconds())
	}

	if _, err := ParseDuration("garbage"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput, got %v", err)
	}
	if _, err := ParseDuration("10:99:00"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput for minutes 99, got %v", err)
	}
}

func TestDurationRound(t *testing.T) {
	d, _ := NewDuration(1, 7, 40)
	if got := d.Round(15); got.String() != "01:15:00" {
		t.Errorf("Round(15) = %s, want 01:15:00", got)
	}
	if got := d.Round(60); got.String() != "01:00:00" {
		t.Errorf("Round(60) = %s, want 01:00:00", got)
	}
}

func TestFormatSeconds(t *testing.T) {
	secs := 12*3600 + 30*60 + 30
	if got := FormatSeconds(secs, true); got != "12:30:30" {
		t.Errorf("FormatSeconds with seconds = %s", got)
	}
	if got := FormatSeconds(secs, false); got != "12:30" {
		t.Errorf("FormatSeconds without seconds = %s", got)
	}
}
