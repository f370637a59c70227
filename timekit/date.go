package timekit

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the textual form used by the date widgets.
	DateLayout = "2006-01-02"
	// TimeLayout is the textual form used by the time widgets.
	TimeLayout = "15:04:05"
	// DateTimeLayout combines both.
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Date is a calendar date. The zero value is not a valid date; construct
// through NewDate, ParseDate or Today.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, validating that it is a real calendar date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	days, err := DaysInMonth(year, month)
	if err != nil {
		return Date{}, err
	}
	if day < 1 || day > days {
		return Date{}, fmt.Errorf("%w: day %d of %v %d", ErrInvalidCalendarInput, day, month, year)
	}
	return Date{year, month, day}, nil
}

// Today returns the current date in the local timezone.
func Today() Date {
	now := time.Now()
	return Date{now.Year(), now.Month(), now.Day()}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedInput, value)
	}
	return Date{t.Year(), t.Month(), t.Day()}, nil
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// GoTime returns midnight of the date in loc.
func (d Date) GoTime(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Weekday() time.Weekday {
	return d.GoTime(time.UTC).Weekday()
}

// Compare orders d against o chronologically: -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// AddDays returns the date n days later (earlier if negative).
func (d Date) AddDays(n int) Date {
	t := d.GoTime(time.UTC).AddDate(0, 0, n)
	return Date{t.Year(), t.Month(), t.Day()}
}

// AddMonths shifts by whole months, clamping the day to the target month.
// Shifts beyond the supported year window return the date unchanged.
func (d Date) AddMonths(n int) Date {
	year, month, err := ShiftMonth(d.Year, d.Month, n)
	if err != nil {
		return d
	}
	return Date{year, month, clampDay(year, month, d.Day)}
}

// AddYears shifts by whole years, clamping Feb 29 when the target year is
// not a leap year. Shifts beyond the year window return the date unchanged.
func (d Date) AddYears(n int) Date {
	year := d.Year + n
	if year < MinYear || year > MaxYear {
		return d
	}
	return Date{year, d.Month, clampDay(year, d.Month, d.Day)}
}

// DaysUntil counts the days from d to o; negative when o is earlier.
func (d Date) DaysUntil(o Date) int {
	return int(o.GoTime(time.UTC).Sub(d.GoTime(time.UTC)) / (24 * time.Hour))
}

// At combines the date with a time of day.
func (d Date) At(t Time) DateTime { return DateTime{Date: d, Time: t} }

// Time is a time of day on a 24-hour clock. The zero value is midnight.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// NewTime builds a Time, validating each component.
func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Time{}, fmt.Errorf("%w: time %02d:%02d:%02d", ErrOutOfRange, hour, minute, second)
	}
	return Time{hour, minute, second}, nil
}

// ParseTime parses HH:MM:SS or HH:MM.
func ParseTime(value string) (Time, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		if t, err = time.Parse("15:04", value); err != nil {
			return Time{}, fmt.Errorf("%w: %q", ErrMalformedInput, value)
		}
	}
	return Time{t.Hour(), t.Minute(), t.Second()}, nil
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// SecondOfDay returns the seconds elapsed since midnight.
func (t Time) SecondOfDay() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// TimeFromSecondOfDay builds the time of day secs seconds after midnight,
// wrapping around every 24 hours.
func TimeFromSecondOfDay(secs int) Time {
	secs %= 24 * 3600
	if secs < 0 {
		secs += 24 * 3600
	}
	return Time{secs / 3600, secs % 3600 / 60, secs % 60}
}

func (t Time) Compare(o Time) int {
	return sign(t.SecondOfDay() - o.SecondOfDay())
}

// Round snaps the time to the nearest multiple of unit minutes.
func (t Time) Round(unit int) Time {
	if unit <= 0 {
		return t
	}
	step := unit * 60
	secs := (t.SecondOfDay() + step/2) / step * step
	if secs >= 24*3600 {
		secs -= step
	}
	return TimeFromSecondOfDay(secs)
}

// DateTime is a calendar date combined with a time of day.
type DateTime struct {
	Date Date
	Time Time
}

// Now returns the current local date and time at second precision.
func Now() DateTime {
	now := time.Now()
	return DateTime{
		Date: Date{now.Year(), now.Month(), now.Day()},
		Time: Time{now.Hour(), now.Minute(), now.Second()},
	}
}

// ParseDateTime parses "YYYY-MM-DD HH:MM:SS".
func ParseDateTime(value string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %q", ErrMalformedInput, value)
	}
	return DateTime{
		Date: Date{t.Year(), t.Month(), t.Day()},
		Time: Time{t.Hour(), t.Minute(), t.Second()},
	}, nil
}

// FromGoTime converts a time.Time, dropping sub-second precision.
func FromGoTime(t time.Time) DateTime {
	return DateTime{
		Date: Date{t.Year(), t.Month(), t.Day()},
		Time: Time{t.Hour(), t.Minute(), t.Second()},
	}
}

func (dt DateTime) String() string {
	return dt.Date.String() + " " + dt.Time.String()
}

// GoTime returns the instant in loc.
func (dt DateTime) GoTime(loc *time.Location) time.Time {
	return time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, 0, loc)
}

func (dt DateTime) Compare(o DateTime) int {
	if c := dt.Date.Compare(o.Date); c != 0 {
		return c
	}
	return dt.Time.Compare(o.Time)
}

func (dt DateTime) Before(o DateTime) bool { return dt.Compare(o) < 0 }
func (dt DateTime) After(o DateTime) bool  { return dt.Compare(o) > 0 }

// AddSeconds shifts the datetime by n seconds, carrying across days.
func (dt DateTime) AddSeconds(n int) DateTime {
	return FromGoTime(dt.GoTime(time.UTC).Add(time.Duration(n) * time.Second))
}

// SecondsUntil counts seconds from dt to o; negative when o is earlier.
func (dt DateTime) SecondsUntil(o DateTime) int {
	return int(o.GoTime(time.UTC).Sub(dt.GoTime(time.UTC)) / time.Second)
}

// WithDate swaps the calendar date, keeping the time of day.
func (dt DateTime) WithDate(d Date) DateTime { return DateTime{Date: d, Time: dt.Time} }

// WithTime swaps the time of day, keeping the date.
func (dt DateTime) WithTime(t Time) DateTime { return DateTime{Date: dt.Date, Time: t} }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
