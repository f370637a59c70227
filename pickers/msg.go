// Package pickers provides Bubble Tea widgets for selecting dates, times,
// durations and ranges. Widgets follow the bubbles component convention:
// value models updated through Update, rendered through View, announcing
// edits with typed messages delivered as commands.
package pickers

import (
	tea "github.com/charmbracelet/bubbletea"

	"timepiece/timekit"
)

// DateChangedMsg announces a new picker date. A nil Date means the value
// was cleared.
type DateChangedMsg struct {
	ID   string
	Date *timekit.Date
}

// TimeChangedMsg announces a new picker time of day.
type TimeChangedMsg struct {
	ID   string
	Time *timekit.Time
}

// DateTimeChangedMsg announces a new picker datetime.
type DateTimeChangedMsg struct {
	ID       string
	DateTime *timekit.DateTime
}

// DurationChangedMsg announces a new picker duration.
type DurationChangedMsg struct {
	ID       string
	Duration *timekit.Duration
}

// DateRangeChangedMsg announces a change to either endpoint of a date range
// picker.
type DateRangeChangedMsg struct {
	ID    string
	Start *timekit.Date
	End   *timekit.Date
}

// DateTimeRangeChangedMsg announces a change to either endpoint of a
// datetime range picker.
type DateTimeRangeChangedMsg struct {
	ID    string
	Start *timekit.DateTime
	End   *timekit.DateTime
}

// DaySelectedMsg is emitted by a DateSelect when a day cell is chosen.
type DaySelectedMsg struct {
	ID   string
	Date timekit.Date
	// End marks a selection aimed at the end of a range.
	End bool
}

// TimeSelectedMsg is emitted by a TimeSelect when a preset time is chosen.
type TimeSelectedMsg struct {
	ID   string
	Time timekit.Time
	// End marks a selection aimed at the end of a range.
	End bool
}

// DurationAdjustedMsg is emitted by a DurationSelect quick-adjust cell.
type DurationAdjustedMsg struct {
	ID string
	// DeltaSeconds is the signed adjustment.
	DeltaSeconds int
}

// DurationRoundedMsg is emitted by a DurationSelect rounding cell.
type DurationRoundedMsg struct {
	ID string
	// Minutes is the rounding granularity.
	Minutes int
}

func cmdOf(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
