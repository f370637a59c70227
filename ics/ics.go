// Package ics loads iCalendar feeds and turns them into per-day activity
// totals suitable for the heatmap.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"timepiece/timekit"
)

// Event is a normalized VEVENT. Recurrence is kept raw and expanded later.
type Event struct {
	UID     string
	Summary string
	Start   time.Time
	End     time.Time
	AllDay  bool
	RRule   string
	ExDates []time.Time
}

// Occurrence is one concrete instance of an event after recurrence
// expansion.
type Occurrence struct {
	UID     string
	Summary string
	Start   time.Time
	End     time.Time
	AllDay  bool
}

// maxOccurrences caps recurrence expansion per event so a malformed or
// unbounded RRULE cannot blow up a year scan.
const maxOccurrences = 5000

// Parse reads a single ICS payload. Events missing a UID or a start are
// skipped; a payload that is not an iCalendar at all is a MalformedInput
// error.
func Parse(r io.Reader) ([]Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("%w: ics: %v", timekit.ErrMalformedInput, err)
	}

	events := make([]Event, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		ev, err := parseEvent(ve)
		if err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseEvent(ve *ical.VEvent) (Event, error) {
	var out Event

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return out, fmt.Errorf("%w: vevent missing UID", timekit.ErrMalformedInput)
	}
	out.UID = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("%w: vevent %s: %v", timekit.ErrMalformedInput, out.UID, err)
	}
	out.Start = start
	if end, err := ve.GetEndAt(); err == nil {
		out.End = end
	}

	// VALUE=DATE or a bare YYYYMMDD start means an all-day event.
	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			out.AllDay = true
		}
		if !strings.Contains(p.Value, "T") {
			out.AllDay = true
		}
	}
	if out.End.IsZero() || !out.End.After(out.Start) {
		if out.AllDay {
			out.End = out.Start.Add(24 * time.Hour)
		} else {
			out.End = out.Start
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.RRule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseStamp(part); err == nil {
				out.ExDates = append(out.ExDates, t)
			}
		}
	}

	return out, nil
}

// parseStamp handles the basic EXDATE forms: UTC date-times, floating
// date-times and bare dates.
func parseStamp(v string) (time.Time, error) {
	switch {
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.Parse("20060102T150405", v)
	default:
		return time.Parse("20060102", v)
	}
}

// Expand resolves recurrences into concrete occurrences intersecting
// [from, to). Expansion per event is capped at maxOccurrences.
func Expand(events []Event, from, to time.Time) []Occurrence {
	var out []Occurrence
	for _, ev := range events {
		if ev.RRule == "" {
			if overlap(ev.Start, ev.End, from, to) > 0 || ev.Start.Equal(from) {
				out = append(out, occurrenceOf(ev, ev.Start, ev.End))
			}
			continue
		}
		out = append(out, expandRecurring(ev, from, to)...)
	}
	return out
}

func expandRecurring(ev Event, from, to time.Time) []Occurrence {
	r, err := rrule.StrToRRule(ev.RRule)
	if err != nil {
		return nil
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	starts := set.Between(from.In(ev.Start.Location()), to.In(ev.Start.Location()), true)
	if len(starts) > maxOccurrences {
		starts = starts[:maxOccurrences]
	}

	dur := ev.End.Sub(ev.Start)
	out := make([]Occurrence, 0, len(starts))
	for _, start := range starts {
		if ev.AllDay {
			day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
			out = append(out, occurrenceOf(ev, day, day.Add(24*time.Hour)))
			continue
		}
		out = append(out, occurrenceOf(ev, start, start.Add(dur)))
	}
	return out
}

func occurrenceOf(ev Event, start, end time.Time) Occurrence {
	return Occurrence{
		UID:     ev.UID,
		Summary: ev.Summary,
		Start:   start,
		End:     end,
		AllDay:  ev.AllDay,
	}
}

// DailyTotals sums busy hours per calendar day of the given year.
// Occurrences spanning midnight are split at day boundaries; the portion
// outside the year is discarded.
func DailyTotals(events []Event, year int, loc *time.Location) (map[timekit.Date]float64, error) {
	if year < timekit.MinYear || year > timekit.MaxYear {
		return nil, fmt.Errorf("%w: year %d", timekit.ErrInvalidCalendarInput, year)
	}
	if loc == nil {
		loc = time.Local
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(1, 0, 0)

	totals := make(map[timekit.Date]float64)
	for _, occ := range Expand(events, from, to) {
		start := occ.Start.In(loc)
		end := occ.End.In(loc)

		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		for day.Before(end) {
			next := day.AddDate(0, 0, 1)
			busy := overlap(start, end, maxTime(day, from), minTime(next, to))
			if busy > 0 {
				d := timekit.Date{Year: day.Year(), Month: day.Month(), Day: day.Day()}
				totals[d] += busy.Hours()
			}
			day = next
		}
	}
	return totals, nil
}

// overlap returns the shared span of [aStart, aEnd) and [bStart, bEnd).
func overlap(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	if aStart.Before(bStart) {
		aStart = bStart
	}
	if aEnd.After(bEnd) {
		aEnd = bEnd
	}
	if !aEnd.After(aStart) {
		return 0
	}
	return aEnd.Sub(aStart)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
