package pickers

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"timepiece/timekit"
)

// fieldUnit identifies which component of a textual value the cursor sits
// on, so the up/down spinbox keys know what to increment.
type fieldUnit int

const (
	unitYear fieldUnit = iota
	unitMonth
	unitDay
	unitHour
	unitMinute
	unitSecond
)

type fieldZone struct {
	lo, hi int // cursor positions [lo, hi)
	unit   fieldUnit
}

func zoneAt(zones []fieldZone, pos int) (fieldUnit, bool) {
	for _, z := range zones {
		if pos >= z.lo && pos < z.hi {
			return z.unit, true
		}
	}
	// Past the last zone counts as the last component, matching a cursor
	// resting at the end of the input.
	if len(zones) > 0 && pos >= zones[len(zones)-1].hi {
		return zones[len(zones)-1].unit, true
	}
	return 0, false
}

var (
	dateZones = []fieldZone{{0, 4, unitYear}, {5, 7, unitMonth}, {8, 10, unitDay}}
	timeZones = []fieldZone{{0, 2, unitHour}, {3, 5, unitMinute}, {6, 8, unitSecond}}
	dtZones   = []fieldZone{
		{0, 4, unitYear}, {5, 7, unitMonth}, {8, 10, unitDay},
		{11, 13, unitHour}, {14, 16, unitMinute}, {17, 19, unitSecond},
	}
)

func newTextInput(placeholder string, limit int, styles Styles) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = limit + 1
	ti.Prompt = ""
	ti.PlaceholderStyle = styles.Placeholder
	return ti
}

func inputView(input textinput.Model, invalid bool, styles Styles) string {
	switch {
	case invalid:
		input.TextStyle = styles.InputInvalid
	case input.Focused():
		input.TextStyle = styles.InputFocused
	default:
		input.TextStyle = styles.Input
	}
	return input.View()
}

// DateInput is a single-line date entry in YYYY-MM-DD form. Text that does
// not parse keeps the last valid date and renders with the invalid style;
// up/down adjust the year, month or day under the cursor.
type DateInput struct {
	KeyMap KeyMap
	Styles Styles

	id      string
	input   textinput.Model
	date    *timekit.Date
	invalid bool
}

// NewDateInput builds a blank date input. The id tags every message the
// input emits.
func NewDateInput(id string) DateInput {
	styles := DefaultStyles()
	return DateInput{
		KeyMap: DefaultKeyMap(),
		Styles: styles,
		id:     id,
		input:  newTextInput("YYYY-MM-DD", len(timekit.DateLayout), styles),
	}
}

func (m DateInput) ID() string            { return m.id }
func (m DateInput) Date() *timekit.Date   { return m.date }
func (m DateInput) Invalid() bool         { return m.invalid }
func (m DateInput) Focused() bool         { return m.input.Focused() }
func (m *DateInput) Focus() tea.Cmd       { return m.input.Focus() }
func (m *DateInput) Blur()                { m.input.Blur() }
func (m DateInput) Init() tea.Cmd         { return textinput.Blink }
func (m DateInput) View() string          { return inputView(m.input, m.invalid, m.Styles) }

// SetDate replaces the value without emitting a change message.
func (m *DateInput) SetDate(d *timekit.Date) {
	m.date = d
	m.invalid = false
	if d == nil {
		m.input.SetValue("")
	} else {
		m.input.SetValue(d.String())
	}
}

func (m DateInput) emit() tea.Cmd {
	return cmdOf(DateChangedMsg{ID: m.id, Date: m.date})
}

func (m DateInput) Update(msg tea.Msg) (DateInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.input.Focused() {
		switch {
		case key.Matches(keyMsg, m.KeyMap.Up):
			return m.adjust(1)
		case key.Matches(keyMsg, m.KeyMap.Down):
			return m.adjust(-1)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m.reparse(cmd)
}

func (m DateInput) reparse(cmd tea.Cmd) (DateInput, tea.Cmd) {
	text := m.input.Value()
	if text == "" {
		m.invalid = false
		if m.date != nil {
			m.date = nil
			return m, tea.Batch(cmd, m.emit())
		}
		return m, cmd
	}

	date, err := timekit.ParseDate(text)
	if err != nil {
		m.invalid = true
		return m, cmd
	}
	m.invalid = false
	if m.date == nil || *m.date != date {
		m.date = &date
		return m, tea.Batch(cmd, m.emit())
	}
	return m, cmd
}

func (m DateInput) adjust(offset int) (DateInput, tea.Cmd) {
	if m.date == nil {
		today := timekit.Today()
		m.SetDate(&today)
		return m, m.emit()
	}

	unit, ok := zoneAt(dateZones, m.input.Position())
	if !ok {
		return m, nil
	}
	next := *m.date
	switch unit {
	case unitYear:
		next = next.AddYears(offset)
	case unitMonth:
		next = next.AddMonths(offset)
	case unitDay:
		next = next.AddDays(offset)
	}
	pos := m.input.Position()
	m.SetDate(&next)
	m.input.SetCursor(pos)
	return m, m.emit()
}

// TimeInput is a single-line time-of-day entry in HH:MM:SS form. Up/down
// adjust the hour, minute or second under the cursor, wrapping at midnight.
type TimeInput struct {
	KeyMap KeyMap
	Styles Styles

	id      string
	input   textinput.Model
	time    *timekit.Time
	invalid bool
}

// NewTimeInput builds a blank time input.
func NewTimeInput(id string) TimeInput {
	styles := DefaultStyles()
	return TimeInput{
		KeyMap: DefaultKeyMap(),
		Styles: styles,
		id:     id,
		input:  newTextInput("HH:MM:SS", len(timekit.TimeLayout), styles),
	}
}

func (m TimeInput) ID() string          { return m.id }
func (m TimeInput) Time() *timekit.Time { return m.time }
func (m TimeInput) Invalid() bool       { return m.invalid }
func (m TimeInput) Focused() bool       { return m.input.Focused() }
func (m *TimeInput) Focus() tea.Cmd     { return m.input.Focus() }
func (m *TimeInput) Blur()              { m.input.Blur() }
func (m TimeInput) Init() tea.Cmd       { return textinput.Blink }
func (m TimeInput) View() string        { return inputView(m.input, m.invalid, m.Styles) }

// SetTime replaces the value without emitting a change message.
func (m *TimeInput) SetTime(t *timekit.Time) {
	m.time = t
	m.invalid = false
	if t == nil {
		m.input.SetValue("")
	} else {
		m.input.SetValue(t.String())
	}
}

func (m TimeInput) emit() tea.Cmd {
	return cmdOf(TimeChangedMsg{ID: m.id, Time: m.time})
}

func (m TimeInput) Update(msg tea.Msg) (TimeInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.input.Focused() {
		switch {
		case key.Matches(keyMsg, m.KeyMap.Up):
			return m.adjust(1)
		case key.Matches(keyMsg, m.KeyMap.Down):
			return m.adjust(-1)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	text := m.input.Value()
	if text == "" {
		m.invalid = false
		if m.time != nil {
			m.time = nil
			return m, tea.Batch(cmd, m.emit())
		}
		return m, cmd
	}

	parsed, err := timekit.ParseTime(text)
	if err != nil {
		m.invalid = true
		return m, cmd
	}
	m.invalid = false
	if m.time == nil || *m.time != parsed {
		m.time = &parsed
		return m, tea.Batch(cmd, m.emit())
	}
	return m, cmd
}

func (m TimeInput) adjust(offset int) (TimeInput, tea.Cmd) {
	if m.time == nil {
		now := timekit.Now().Time
		m.SetTime(&now)
		return m, m.emit()
	}

	unit, ok := zoneAt(timeZones, m.input.Position())
	if !ok {
		return m, nil
	}
	step := offset
	switch unit {
	case unitHour:
		step *= 3600
	case unitMinute:
		step *= 60
	}
	next := timekit.TimeFromSecondOfDay(m.time.SecondOfDay() + step)
	pos := m.input.Position()
	m.SetTime(&next)
	m.input.SetCursor(pos)
	return m, m.emit()
}

// DateTimeInput combines date and time into one YYYY-MM-DD HH:MM:SS entry.
type DateTimeInput struct {
	KeyMap KeyMap
	Styles Styles

	id      string
	input   textinput.Model
	value   *timekit.DateTime
	invalid bool
}

// NewDateTimeInput builds a blank datetime input.
func NewDateTimeInput(id string) DateTimeInput {
	styles := DefaultStyles()
	return DateTimeInput{
		KeyMap: DefaultKeyMap(),
		Styles: styles,
		id:     id,
		input:  newTextInput("YYYY-MM-DD HH:MM:SS", len(timekit.DateTimeLayout), styles),
	}
}

func (m DateTimeInput) ID() string                  { return m.id }
func (m DateTimeInput) DateTime() *timekit.DateTime { return m.value }
func (m DateTimeInput) Invalid() bool               { return m.invalid }
func (m DateTimeInput) Focused() bool               { return m.input.Focused() }
func (m *DateTimeInput) Focus() tea.Cmd             { return m.input.Focus() }
func (m *DateTimeInput) Blur()                      { m.input.Blur() }
func (m DateTimeInput) Init() tea.Cmd               { return textinput.Blink }
func (m DateTimeInput) View() string                { return inputView(m.input, m.invalid, m.Styles) }

// SetDateTime replaces the value without emitting a change message.
func (m *DateTimeInput) SetDateTime(dt *timekit.DateTime) {
	m.value = dt
	m.invalid = false
	if dt == nil {
		m.input.SetValue("")
	} else {
		m.input.SetValue(dt.String())
	}
}

func (m DateTimeInput) emit() tea.Cmd {
	return cmdOf(DateTimeChangedMsg{ID: m.id, DateTime: m.value})
}

func (m DateTimeInput) Update(msg tea.Msg) (DateTimeInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.input.Focused() {
		switch {
		case key.Matches(keyMsg, m.KeyMap.Up):
			return m.adjust(1)
		case key.Matches(keyMsg, m.KeyMap.Down):
			return m.adjust(-1)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	text := m.input.Value()
	if text == "" {
		m.invalid = false
		if m.value != nil {
			m.value = nil
			return m, tea.Batch(cmd, m.emit())
		}
		return m, cmd
	}

	parsed, err := timekit.ParseDateTime(text)
	if err != nil {
		m.invalid = true
		return m, cmd
	}
	m.invalid = false
	if m.value == nil || *m.value != parsed {
		m.value = &parsed
		return m, tea.Batch(cmd, m.emit())
	}
	return m, cmd
}

func (m DateTimeInput) adjust(offset int) (DateTimeInput, tea.Cmd) {
	if m.value == nil {
		now := timekit.Now()
		m.SetDateTime(&now)
		return m, m.emit()
	}

	unit, ok := zoneAt(dtZones, m.input.Position())
	if !ok {
		return m, nil
	}
	next := *m.value
	switch unit {
	case unitYear:
		next.Date = next.Date.AddYears(offset)
	case unitMonth:
		next.Date = next.Date.AddMonths(offset)
	case unitDay:
		next.Date = next.Date.AddDays(offset)
	case unitHour:
		next = next.AddSeconds(offset * 3600)
	case unitMinute:
		next = next.AddSeconds(offset * 60)
	case unitSecond:
		next = next.AddSeconds(offset)
	}
	pos := m.input.Position()
	m.SetDateTime(&next)
	m.input.SetCursor(pos)
	return m, m.emit()
}

// DurationInput is an HH:MM:SS elapsed-time entry capped at 99:59:59.
// Up/down adjustments saturate at the cap and floor at zero.
type DurationInput struct {
	KeyMap KeyMap
	Styles Styles

	id      string
	input   textinput.Model
	value   *timekit.Duration
	invalid bool
}

// NewDurationInput builds a blank duration input.
func NewDurationInput(id string) DurationInput {
	styles := DefaultStyles()
	return DurationInput{
		KeyMap: DefaultKeyMap(),
		Styles: styles,
		id:     id,
		input:  newTextInput("HH:MM:SS", 8, styles),
	}
}

func (m DurationInput) ID() string                  { return m.id }
func (m DurationInput) Duration() *timekit.Duration { return m.value }
func (m DurationInput) Invalid() bool               { return m.invalid }
func (m DurationInput) Focused() bool               { return m.input.Focused() }
func (m *DurationInput) Focus() tea.Cmd             { return m.input.Focus() }
func (m *DurationInput) Blur()                      { m.input.Blur() }
func (m DurationInput) Init() tea.Cmd               { return textinput.Blink }
func (m DurationInput) View() string                { return inputView(m.input, m.invalid, m.Styles) }

// SetDuration replaces the value without emitting a change message.
func (m *DurationInput) SetDuration(d *timekit.Duration) {
	m.value = d
	m.invalid = false
	if d == nil {
		m.input.SetValue("")
	} else {
		m.input.SetValue(d.String())
	}
}

func (m DurationInput) emit() tea.Cmd {
	return cmdOf(DurationChangedMsg{ID: m.id, Duration: m.value})
}

func (m DurationInput) Update(msg tea.Msg) (DurationInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.input.Focused() {
		switch {
		case key.Matches(keyMsg, m.KeyMap.Up):
			return m.adjust(1)
		case key.Matches(keyMsg, m.KeyMap.Down):
			return m.adjust(-1)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	text := m.input.Value()
	if text == "" {
		m.invalid = false
		if m.value != nil {
			m.value = nil
			return m, tea.Batch(cmd, m.emit())
		}
		return m, cmd
	}

	parsed, err := timekit.ParseDuration(text)
	if err != nil {
		m.invalid = true
		return m, cmd
	}
	m.invalid = false
	if m.value == nil || *m.value != parsed {
		m.value = &parsed
		return m, tea.Batch(cmd, m.emit())
	}
	return m, cmd
}

func (m DurationInput) adjust(offset int) (DurationInput, tea.Cmd) {
	if m.value == nil {
		zero := timekit.Duration{}
		m.SetDuration(&zero)
		return m, m.emit()
	}

	unit, ok := zoneAt(timeZones, m.input.Position())
	if !ok {
		return m, nil
	}
	step := offset
	switch unit {
	case unitHour:
		step *= 3600
	case unitMinute:
		step *= 60
	}
	next := m.value.AddSeconds(step)
	pos := m.input.Position()
	m.SetDuration(&next)
	m.input.SetCursor(pos)
	return m, m.emit()
}
