package timekit

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, y int, m time.Month, d int) Date {
	t.Helper()
	date, err := NewDate(y, m, d)
	if err != nil {
		t.Fatalf("NewDate(%d, %v, %d) returned error: %v", y, m, d, err)
	}
	return date
}

func TestDateRangeStates(t *testing.T) {
	var r DateRange
	if r.State() != RangeEmpty {
		t.Fatalf("Fresh range should be empty, got %v", r.State())
	}

	r.SetStart(mustDate(t, 2025, time.March, 10))
	if r.State() != RangePartial {
		t.Errorf("Expected partial after SetStart, got %v", r.State())
	}

	r.SetEnd(mustDate(t, 2025, time.March, 20))
	if r.State() != RangeComplete {
		t.Errorf("Expected complete after SetEnd, got %v", r.State())
	}

	r.Reset()
	if r.State() != RangeEmpty {
		t.Errorf("Expected empty after Reset, got %v", r.State())
	}
}

func TestDateRangeSilentAdjust(t *testing.T) {
	var r DateRange
	r.SetStart(mustDate(t, 2025, time.June, 15))
	r.SetEnd(mustDate(t, 2025, time.June, 20))

	// Setting start past the end drags the end along.
	r.SetStart(mustDate(t, 2025, time.July, 1))
	start, _ := r.Start()
	end, _ := r.End()
	if start != end || start != mustDate(t, 2025, time.July, 1) {
		t.Errorf("Expected both endpoints at 2025-07-01, got %v and %v", start, end)
	}

	// Setting end before the start drags the start along.
	r.SetEnd(mustDate(t, 2025, time.May, 5))
	start, _ = r.Start()
	end, _ = r.End()
	if start != end || end != mustDate(t, 2025, time.May, 5) {
		t.Errorf("Expected both endpoints at 2025-05-05, got %v and %v", start, end)
	}

	// Invariant always holds after arbitrary edits.
	dates := []Date{
		mustDate(t, 2024, time.January, 1),
		mustDate(t, 2026, time.December, 31),
		mustDate(t, 2025, time.June, 15),
		mustDate(t, 2023, time.March, 8),
	}
	for i, d := range dates {
		if i%2 == 0 {
			r.SetStart(d)
		} else {
			r.SetEnd(d)
		}
		start, _ := r.Start()
		end, _ := r.End()
		if start.After(end) {
			t.Fatalf("Invariant broken after edit %d: %v > %v", i, start, end)
		}
	}
}

func TestDateRangeContains(t *testing.T) {
	var r DateRange
	r.SetStart(mustDate(t, 2025, time.June, 10))
	r.SetEnd(mustDate(t, 2025, time.June, 20))

	for _, d := range []Date{
		mustDate(t, 2025, time.June, 10), // start bound inclusive
		mustDate(t, 2025, time.June, 15),
		mustDate(t, 2025, time.June, 20), // end bound inclusive
	} {
		if !r.Contains(d) {
			t.Errorf("Range should contain %v", d)
		}
	}
	if r.Contains(mustDate(t, 2025, time.June, 9)) {
		t.Error("Range should not contain the day before start")
	}
	if r.Contains(mustDate(t, 2025, time.June, 21)) {
		t.Error("Range should not contain the day after end")
	}

	var partial DateRange
	partial.SetStart(mustDate(t, 2025, time.June, 10))
	if partial.Contains(mustDate(t, 2025, time.June, 10)) {
		t.Error("Partial range should contain nothing")
	}
}

func TestDateRangeDuration(t *testing.T) {
	var r DateRange
	r.SetStart(mustDate(t, 2025, time.June, 10))
	r.SetEnd(mustDate(t, 2025, time.June, 12))
	if got := r.Duration().String(); got != "48:00:00" {
		t.Errorf("Expected 48:00:00, got %s", got)
	}

	// Spans past the cap saturate.
	r.SetEnd(mustDate(t, 2025, time.December, 1))
	if got := r.Duration().Seconds(); got != MaxDurationSeconds {
		t.Errorf("Expected saturated duration, got %d seconds", got)
	}
}

func TestDateRangeUnionClamp(t *testing.T) {
	var a, b DateRange
	a.SetStart(mustDate(t, 2025, time.June, 5))
	a.SetEnd(mustDate(t, 2025, time.June, 10))
	b.SetStart(mustDate(t, 2025, time.June, 8))
	b.SetEnd(mustDate(t, 2025, time.June, 20))

	u := a.Union(b)
	start, _ := u.Start()
	end, _ := u.End()
	if start != mustDate(t, 2025, time.June, 5) || end != mustDate(t, 2025, time.June, 20) {
		t.Errorf("Union = [%v, %v]", start, end)
	}

	if got := a.Clamp(mustDate(t, 2025, time.June, 1)); got != mustDate(t, 2025, time.June, 5) {
		t.Errorf("Clamp below = %v", got)
	}
	if got := a.Clamp(mustDate(t, 2025, time.June, 30)); got != mustDate(t, 2025, time.June, 10) {
		t.Errorf("Clamp above = %v", got)
	}
	if got := a.Clamp(mustDate(t, 2025, time.June, 7)); got != mustDate(t, 2025, time.June, 7) {
		t.Errorf("Clamp inside = %v", got)
	}
}

func TestDateTimeRange(t *testing.T) {
	var r DateTimeRange
	start := DateTime{mustDate(t, 2025, time.June, 10), Time{9, 0, 0}}
	end := DateTime{mustDate(t, 2025, time.June, 10), Time{17, 30, 0}}

	r.SetStart(start)
	r.SetEnd(end)
	if got := r.Duration().String(); got != "08:30:00" {
		t.Errorf("Expected 08:30:00, got %s", got)
	}

	if !r.Contains(DateTime{mustDate(t, 2025, time.June, 10), Time{12, 0, 0}}) {
		t.Error("Range should contain noon")
	}
	if !r.Contains(start) || !r.Contains(end) {
		t.Error("Bounds should be inclusive")
	}

	// Inverting pushes the opposite endpoint.
	late := DateTime{mustDate(t, 2025, time.June, 11), Time{8, 0, 0}}
	r.SetStart(late)
	gotEnd, _ := r.End()
	if gotEnd != late {
		t.Errorf("End should follow the start, got %v", gotEnd)
	}
}
