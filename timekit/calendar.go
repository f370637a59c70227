package timekit

import (
	"fmt"
	"time"
)

// Year bounds for every calendar helper. Dates outside this window are
// rejected rather than clamped.
const (
	MinYear = 1
	MaxYear = 9999
)

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year under the proleptic
// Gregorian rule: divisible by 4, not by 100 unless by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) (int, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: year %d", ErrInvalidCalendarInput, year)
	}
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidCalendarInput, int(month))
	}
	if month == time.February && IsLeapYear(year) {
		return 29, nil
	}
	return monthDays[month], nil
}

// ShiftMonth moves (year, month) by delta months, carrying overflow and
// underflow into the year.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month, error) {
	if year < MinYear || year > MaxYear {
		return 0, 0, fmt.Errorf("%w: year %d", ErrInvalidCalendarInput, year)
	}
	if month < time.January || month > time.December {
		return 0, 0, fmt.Errorf("%w: month %d", ErrInvalidCalendarInput, int(month))
	}

	total := year*12 + int(month) - 1 + delta
	newYear, newMonth := total/12, total%12
	if newMonth < 0 {
		newMonth += 12
		newYear--
	}
	if newYear < MinYear || newYear > MaxYear {
		return 0, 0, fmt.Errorf("%w: shifted year %d", ErrInvalidCalendarInput, newYear)
	}
	return newYear, time.Month(newMonth + 1), nil
}

// WeekRow is a single visual calendar week. Cells hold day numbers; zero
// marks padding before day 1 or after the last day of the month.
type WeekRow [7]int

// MonthGrid lays the month out as week rows starting on weekStart. The day
// cells of all rows sum to DaysInMonth(year, month).
func MonthGrid(year int, month time.Month, weekStart time.Weekday) ([]WeekRow, error) {
	days, err := DaysInMonth(year, month)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7

	grid := make([]WeekRow, 0, 6)
	var row WeekRow
	col := offset
	for day := 1; day <= days; day++ {
		row[col] = day
		col++
		if col == 7 {
			grid = append(grid, row)
			row = WeekRow{}
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, row)
	}
	return grid, nil
}

// YearGrid lays a whole year out as Monday-first week rows covering every
// day of the year. Cells outside the year are nil. Used by the activity
// heatmap.
func YearGrid(year int) ([][7]*Date, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%w: year %d", ErrInvalidCalendarInput, year)
	}

	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7 // days since Monday
	cursor := first.AddDate(0, 0, -offset)

	var grid [][7]*Date
	for cursor.Year() <= year {
		var row [7]*Date
		for i := 0; i < 7; i++ {
			if cursor.Year() == year {
				d := Date{cursor.Year(), cursor.Month(), cursor.Day()}
				row[i] = &d
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		grid = append(grid, row)
		if cursor.Year() > year {
			break
		}
	}
	return grid, nil
}

// clampDay pins day into the valid range for (year, month). Day 0 of the
// next month is the last day of this month.
func clampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	max := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > max {
		return max
	}
	return day
}
