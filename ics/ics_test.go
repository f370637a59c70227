package ics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"timepiece/timekit"
)

var fixture = strings.Join([]string{
	"BEGIN:VCALENDAR",
	"VERSION:2.0",
	"PRODID:-//timepiece//test//EN",
	"BEGIN:VEVENT",
	"UID:overnight@test",
	"SUMMARY:Night shift",
	"DTSTART:20250610T220000Z",
	"DTEND:20250611T020000Z",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"UID:allday@test",
	"SUMMARY:Conference",
	"DTSTART;VALUE=DATE:20250615",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"UID:weekly@test",
	"SUMMARY:Standup",
	"DTSTART:20250601T090000Z",
	"DTEND:20250601T100000Z",
	"RRULE:FREQ=WEEKLY;COUNT=3",
	"EXDATE:20250608T090000Z",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"SUMMARY:No UID, skipped",
	"DTSTART:20250620T100000Z",
	"END:VEVENT",
	"END:VCALENDAR",
	"",
}, "\r\n")

func parseFixture(t *testing.T) []Event {
	t.Helper()
	events, err := Parse(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return events
}

func TestParseFixture(t *testing.T) {
	events := parseFixture(t)
	if len(events) != 3 {
		t.Fatalf("parsed %d events, want 3 (UID-less event skipped)", len(events))
	}

	byUID := make(map[string]Event, len(events))
	for _, ev := range events {
		byUID[ev.UID] = ev
	}

	if ev := byUID["allday@test"]; !ev.AllDay {
		t.Error("VALUE=DATE event not detected as all-day")
	}
	if ev := byUID["weekly@test"]; ev.RRule != "FREQ=WEEKLY;COUNT=3" {
		t.Errorf("RRULE = %q", ev.RRule)
	}
	if ev := byUID["weekly@test"]; len(ev.ExDates) != 1 {
		t.Errorf("got %d exdates, want 1", len(ev.ExDates))
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse(strings.NewReader("not a calendar"))
	if !errors.Is(err, timekit.ErrMalformedInput) {
		t.Fatalf("err = %v, want MalformedInput", err)
	}
}

func TestExpandAppliesRRuleAndExdate(t *testing.T) {
	events := parseFixture(t)

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var standups []Occurrence
	for _, occ := range Expand(events, from, to) {
		if occ.UID == "weekly@test" {
			standups = append(standups, occ)
		}
	}

	// COUNT=3 minus one EXDATE.
	if len(standups) != 2 {
		t.Fatalf("got %d standup occurrences, want 2", len(standups))
	}
	for _, occ := range standups {
		if occ.Start.Day() == 8 {
			t.Fatal("EXDATE occurrence not removed")
		}
		if got := occ.End.Sub(occ.Start); got != time.Hour {
			t.Fatalf("occurrence duration %s, want 1h", got)
		}
	}
}

func TestDailyTotalsSplitsAtMidnight(t *testing.T) {
	events := parseFixture(t)

	totals, err := DailyTotals(events, 2025, time.UTC)
	if err != nil {
		t.Fatalf("DailyTotals: %v", err)
	}

	day := func(d int) timekit.Date {
		return timekit.Date{Year: 2025, Month: time.June, Day: d}
	}
	if got := totals[day(10)]; got != 2 {
		t.Errorf("June 10 = %v hours, want 2", got)
	}
	if got := totals[day(11)]; got != 2 {
		t.Errorf("June 11 = %v hours, want 2", got)
	}
	if got := totals[day(15)]; got != 25 {
		t.Errorf("June 15 = %v hours, want 25 (all-day plus standup)", got)
	}
	if got := totals[day(1)]; got != 1 {
		t.Errorf("June 1 = %v hours, want 1 (first standup)", got)
	}
	if got := totals[day(8)]; got != 0 {
		t.Errorf("June 8 = %v hours, want 0 (exdate)", got)
	}
}

func TestDailyTotalsRejectsBadYear(t *testing.T) {
	if _, err := DailyTotals(nil, 0, time.UTC); !errors.Is(err, timekit.ErrInvalidCalendarInput) {
		t.Fatal("year 0 accepted")
	}
}
