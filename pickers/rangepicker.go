package pickers

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timepiece/timekit"
)

func dateRangePtrs(r timekit.DateRange) (start, end *timekit.Date) {
	if v, ok := r.Start(); ok {
		s := v
		start = &s
	}
	if v, ok := r.End(); ok {
		e := v
		end = &e
	}
	return start, end
}

func dateTimeRangePtrs(r timekit.DateTimeRange) (start, end *timekit.DateTime) {
	if v, ok := r.Start(); ok {
		s := v
		start = &s
	}
	if v, ok := r.End(); ok {
		e := v
		end = &e
	}
	return start, end
}

// DateRangePicker edits an inclusive date span through two inputs and a
// shared calendar dialog. Endpoints never invert: pushing one past the
// other drags it along. With the span locked, moving an endpoint shifts
// the whole range instead, keeping its length. Changes are announced with
// DateRangeChangedMsg.
type DateRangePicker struct {
	KeyMap KeyMap
	Styles Styles

	id         string
	startInput DateInput
	endInput   DateInput
	dialog     DateSelect
	rng        timekit.DateRange
	locked     bool
	expanded   bool
	focused    bool
	onEnd      bool // which input holds focus while collapsed
}

// NewDateRangePicker builds an empty range picker.
func NewDateRangePicker(id string, weekStart time.Weekday) DateRangePicker {
	return DateRangePicker{
		KeyMap:     DefaultKeyMap(),
		Styles:     DefaultStyles(),
		id:         id,
		startInput: NewDateInput(id + ".start"),
		endInput:   NewDateInput(id + ".end"),
		dialog:     NewDateSelect(id+".select", timekit.Today(), weekStart),
	}
}

func (m DateRangePicker) ID() string                { return m.id }
func (m DateRangePicker) Range() timekit.DateRange  { return m.rng }
func (m DateRangePicker) Locked() bool              { return m.locked }
func (m DateRangePicker) Expanded() bool            { return m.expanded }
func (m DateRangePicker) Focused() bool             { return m.focused }
func (m DateRangePicker) Init() tea.Cmd             { return m.startInput.Init() }

// SetRange replaces both endpoints without emitting a change message.
func (m *DateRangePicker) SetRange(r timekit.DateRange) {
	m.rng = r
	m.syncViews()
}

func (m *DateRangePicker) syncViews() {
	start, end := dateRangePtrs(m.rng)
	m.startInput.SetDate(start)
	m.endInput.SetDate(end)
	m.dialog.SetRange(start, end)
}

func (m *DateRangePicker) Focus() tea.Cmd {
	m.focused = true
	if m.expanded {
		m.dialog.Focus()
		return nil
	}
	if m.onEnd {
		return m.endInput.Focus()
	}
	return m.startInput.Focus()
}

func (m *DateRangePicker) Blur() {
	m.focused = false
	m.startInput.Blur()
	m.endInput.Blur()
	m.dialog.Blur()
}

func (m *DateRangePicker) toggle() tea.Cmd {
	m.expanded = !m.expanded
	if m.expanded {
		m.startInput.Blur()
		m.endInput.Blur()
		m.dialog.Focus()
		start, end := dateRangePtrs(m.rng)
		m.dialog.SetRange(start, end)
		if start != nil {
			m.dialog.ShowDate(*start)
		}
		return nil
	}
	m.dialog.Blur()
	return m.Focus()
}

func (m DateRangePicker) emit() tea.Cmd {
	start, end := dateRangePtrs(m.rng)
	return cmdOf(DateRangeChangedMsg{ID: m.id, Start: start, End: end})
}

// setStart applies a start edit, shifting the locked span or pushing the
// end per the adjustment policy.
func (m *DateRangePicker) setStart(d *timekit.Date) {
	if d == nil {
		m.rng.ClearStart()
		return
	}
	if m.locked && m.rng.State() == timekit.RangeComplete {
		span := m.rng.Days()
		m.rng.SetStart(*d)
		m.rng.SetEnd(d.AddDays(span))
		return
	}
	m.rng.SetStart(*d)
}

func (m *DateRangePicker) setEnd(d *timekit.Date) {
	if d == nil {
		m.rng.ClearEnd()
		return
	}
	if m.locked && m.rng.State() == timekit.RangeComplete {
		span := m.rng.Days()
		m.rng.SetStart(d.AddDays(-span))
		m.rng.SetEnd(*d)
		return
	}
	m.rng.SetEnd(*d)
}

func (m DateRangePicker) Update(msg tea.Msg) (DateRangePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DateChangedMsg:
		switch msg.ID {
		case m.startInput.ID():
			m.setStart(msg.Date)
		case m.endInput.ID():
			m.setEnd(msg.Date)
		default:
			return m, nil
		}
		m.syncViews()
		return m, m.emit()

	case DaySelectedMsg:
		if msg.ID != m.dialog.ID() {
			return m, nil
		}
		date := msg.Date
		if msg.End {
			m.setEnd(&date)
		} else {
			m.setStart(&date)
		}
		m.syncViews()
		return m, m.emit()

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.Toggle):
			return m, m.toggle()
		case key.Matches(msg, m.KeyMap.Lock):
			m.locked = !m.locked
			return m, nil
		case key.Matches(msg, m.KeyMap.Clear):
			m.rng.Reset()
			m.syncViews()
			return m, m.emit()
		case key.Matches(msg, m.KeyMap.Next), key.Matches(msg, m.KeyMap.Prev):
			if !m.expanded {
				m.onEnd = !m.onEnd
				return m, m.Focus()
			}
		}
	}

	var cmd tea.Cmd
	switch {
	case m.expanded:
		m.dialog, cmd = m.dialog.Update(msg)
	case m.onEnd:
		m.endInput, cmd = m.endInput.Update(msg)
	default:
		m.startInput, cmd = m.startInput.Update(msg)
	}
	return m, cmd
}

func (m DateRangePicker) lockView() string {
	if m.locked {
		return m.Styles.Lock.Render(" ⊠")
	}
	return m.Styles.Lock.Render(" ⊡")
}

func (m DateRangePicker) View() string {
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		m.startInput.View(),
		m.Styles.Separator.Render(" → "),
		m.endInput.View(),
		m.lockView(),
	)
	if !m.expanded {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, m.dialog.View())
}

// DateTimeRangePicker is the instant-valued counterpart of
// DateRangePicker. The expanded dialog pairs a calendar with the half-hour
// grid; day picks keep the endpoint's time and time picks keep its date.
// Changes are announced with DateTimeRangeChangedMsg.
type DateTimeRangePicker struct {
	KeyMap KeyMap
	Styles Styles

	id         string
	startInput DateTimeInput
	endInput   DateTimeInput
	dateDialog DateSelect
	timeDialog TimeSelect
	rng        timekit.DateTimeRange
	locked     bool
	expanded   bool
	focused    bool
	onEnd      bool
	onTime     bool
}

// NewDateTimeRangePicker builds an empty datetime range picker.
func NewDateTimeRangePicker(id string, weekStart time.Weekday) DateTimeRangePicker {
	return DateTimeRangePicker{
		KeyMap:     DefaultKeyMap(),
		Styles:     DefaultStyles(),
		id:         id,
		startInput: NewDateTimeInput(id + ".start"),
		endInput:   NewDateTimeInput(id + ".end"),
		dateDialog: NewDateSelect(id+".date", timekit.Today(), weekStart),
		timeDialog: NewTimeSelect(id + ".time"),
	}
}

func (m DateTimeRangePicker) ID() string                   { return m.id }
func (m DateTimeRangePicker) Range() timekit.DateTimeRange { return m.rng }
func (m DateTimeRangePicker) Locked() bool                 { return m.locked }
func (m DateTimeRangePicker) Expanded() bool               { return m.expanded }
func (m DateTimeRangePicker) Focused() bool                { return m.focused }
func (m DateTimeRangePicker) Init() tea.Cmd                { return m.startInput.Init() }

// SetRange replaces both endpoints without emitting a change message.
func (m *DateTimeRangePicker) SetRange(r timekit.DateTimeRange) {
	m.rng = r
	m.syncViews()
}

func (m *DateTimeRangePicker) syncViews() {
	start, end := dateTimeRangePtrs(m.rng)
	m.startInput.SetDateTime(start)
	m.endInput.SetDateTime(end)

	var startDate, endDate *timekit.Date
	if start != nil {
		d := start.Date
		startDate = &d
	}
	if end != nil {
		d := end.Date
		endDate = &d
	}
	m.dateDialog.SetRange(startDate, endDate)
}

func (m *DateTimeRangePicker) Focus() tea.Cmd {
	m.focused = true
	if m.expanded {
		m.focusDialog()
		return nil
	}
	if m.onEnd {
		return m.endInput.Focus()
	}
	return m.startInput.Focus()
}

func (m *DateTimeRangePicker) Blur() {
	m.focused = false
	m.startInput.Blur()
	m.endInput.Blur()
	m.dateDialog.Blur()
	m.timeDialog.Blur()
}

func (m *DateTimeRangePicker) focusDialog() {
	if m.onTime {
		m.dateDialog.Blur()
		m.timeDialog.Focus()
	} else {
		m.timeDialog.Blur()
		m.dateDialog.Focus()
	}
}

func (m *DateTimeRangePicker) toggle() tea.Cmd {
	m.expanded = !m.expanded
	if m.expanded {
		m.startInput.Blur()
		m.endInput.Blur()
		m.syncViews()
		m.focusDialog()
		return nil
	}
	m.dateDialog.Blur()
	m.timeDialog.Blur()
	return m.Focus()
}

func (m DateTimeRangePicker) emit() tea.Cmd {
	start, end := dateTimeRangePtrs(m.rng)
	return cmdOf(DateTimeRangeChangedMsg{ID: m.id, Start: start, End: end})
}

func (m *DateTimeRangePicker) setStart(dt *timekit.DateTime) {
	if dt == nil {
		m.rng.ClearStart()
		return
	}
	if m.locked && m.rng.State() == timekit.RangeComplete {
		span := m.rng.Duration().Seconds()
		m.rng.SetStart(*dt)
		m.rng.SetEnd(dt.AddSeconds(span))
		return
	}
	m.rng.SetStart(*dt)
}

func (m *DateTimeRangePicker) setEnd(dt *timekit.DateTime) {
	if dt == nil {
		m.rng.ClearEnd()
		return
	}
	if m.locked && m.rng.State() == timekit.RangeComplete {
		span := m.rng.Duration().Seconds()
		m.rng.SetStart(dt.AddSeconds(-span))
		m.rng.SetEnd(*dt)
		return
	}
	m.rng.SetEnd(*dt)
}

// endpoint returns the endpoint a dialog pick edits, defaulting to
// midnight today when unset.
func (m DateTimeRangePicker) endpoint(end bool) timekit.DateTime {
	if end {
		if v, ok := m.rng.End(); ok {
			return v
		}
	} else if v, ok := m.rng.Start(); ok {
		return v
	}
	return timekit.DateTime{Date: timekit.Today()}
}

func (m DateTimeRangePicker) Update(msg tea.Msg) (DateTimeRangePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DateTimeChangedMsg:
		switch msg.ID {
		case m.startInput.ID():
			m.setStart(msg.DateTime)
		case m.endInput.ID():
			m.setEnd(msg.DateTime)
		default:
			return m, nil
		}
		m.syncViews()
		return m, m.emit()

	case DaySelectedMsg:
		if msg.ID != m.dateDialog.ID() {
			return m, nil
		}
		next := m.endpoint(msg.End).WithDate(msg.Date)
		if msg.End {
			m.setEnd(&next)
		} else {
			m.setStart(&next)
		}
		m.syncViews()
		return m, m.emit()

	case TimeSelectedMsg:
		if msg.ID != m.timeDialog.ID() {
			return m, nil
		}
		next := m.endpoint(msg.End).WithTime(msg.Time)
		if msg.End {
			m.setEnd(&next)
		} else {
			m.setStart(&next)
		}
		m.syncViews()
		return m, m.emit()

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.Toggle):
			return m, m.toggle()
		case key.Matches(msg, m.KeyMap.Lock):
			m.locked = !m.locked
			return m, nil
		case key.Matches(msg, m.KeyMap.Clear):
			m.rng.Reset()
			m.syncViews()
			return m, m.emit()
		case key.Matches(msg, m.KeyMap.Next), key.Matches(msg, m.KeyMap.Prev):
			if m.expanded {
				m.onTime = !m.onTime
				m.focusDialog()
			} else {
				m.onEnd = !m.onEnd
				return m, m.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch {
	case m.expanded && m.onTime:
		m.timeDialog, cmd = m.timeDialog.Update(msg)
	case m.expanded:
		m.dateDialog, cmd = m.dateDialog.Update(msg)
	case m.onEnd:
		m.endInput, cmd = m.endInput.Update(msg)
	default:
		m.startInput, cmd = m.startInput.Update(msg)
	}
	return m, cmd
}

func (m DateTimeRangePicker) lockView() string {
	if m.locked {
		return m.Styles.Lock.Render(" ⊠")
	}
	return m.Styles.Lock.Render(" ⊡")
}

func (m DateTimeRangePicker) View() string {
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		m.startInput.View(),
		m.Styles.Separator.Render(" → "),
		m.endInput.View(),
		m.lockView(),
	)
	if !m.expanded {
		return line
	}
	dialogs := lipgloss.JoinHorizontal(lipgloss.Top, m.dateDialog.View(), m.timeDialog.View())
	return lipgloss.JoinVertical(lipgloss.Left, line, dialogs)
}

// DateTimeDurationPicker edits a start instant, a duration and an end
// instant that are kept consistent: editing the duration moves the end,
// editing the end recomputes the duration, and editing the start carries
// the duration along. Changes are announced with DateTimeRangeChangedMsg.
type DateTimeDurationPicker struct {
	KeyMap KeyMap
	Styles Styles

	id         string
	startInput DateTimeInput
	durInput   DurationInput
	endInput   DateTimeInput
	rng        timekit.DateTimeRange
	focused    bool
	field      int // 0 start, 1 duration, 2 end
}

// NewDateTimeDurationPicker builds an empty start/duration/end picker.
func NewDateTimeDurationPicker(id string) DateTimeDurationPicker {
	return DateTimeDurationPicker{
		KeyMap:     DefaultKeyMap(),
		Styles:     DefaultStyles(),
		id:         id,
		startInput: NewDateTimeInput(id + ".start"),
		durInput:   NewDurationInput(id + ".duration"),
		endInput:   NewDateTimeInput(id + ".end"),
	}
}

func (m DateTimeDurationPicker) ID() string                   { return m.id }
func (m DateTimeDurationPicker) Range() timekit.DateTimeRange { return m.rng }
func (m DateTimeDurationPicker) Focused() bool                { return m.focused }
func (m DateTimeDurationPicker) Init() tea.Cmd                { return m.startInput.Init() }

// Duration returns the span between the endpoints; zero unless complete.
func (m DateTimeDurationPicker) Duration() timekit.Duration {
	return m.rng.Duration()
}

// SetRange replaces both endpoints without emitting a change message.
func (m *DateTimeDurationPicker) SetRange(r timekit.DateTimeRange) {
	m.rng = r
	m.syncViews()
}

func (m *DateTimeDurationPicker) syncViews() {
	start, end := dateTimeRangePtrs(m.rng)
	m.startInput.SetDateTime(start)
	m.endInput.SetDateTime(end)
	if m.rng.State() == timekit.RangeComplete {
		d := m.rng.Duration()
		m.durInput.SetDuration(&d)
	} else {
		m.durInput.SetDuration(nil)
	}
}

func (m *DateTimeDurationPicker) Focus() tea.Cmd {
	m.focused = true
	switch m.field {
	case 1:
		return m.durInput.Focus()
	case 2:
		return m.endInput.Focus()
	default:
		return m.startInput.Focus()
	}
}

func (m *DateTimeDurationPicker) Blur() {
	m.focused = false
	m.startInput.Blur()
	m.durInput.Blur()
	m.endInput.Blur()
}

func (m DateTimeDurationPicker) emit() tea.Cmd {
	start, end := dateTimeRangePtrs(m.rng)
	return cmdOf(DateTimeRangeChangedMsg{ID: m.id, Start: start, End: end})
}

func (m *DateTimeDurationPicker) cycle(dir int) tea.Cmd {
	m.startInput.Blur()
	m.durInput.Blur()
	m.endInput.Blur()
	m.field = (m.field + dir + 3) % 3
	return m.Focus()
}

func (m DateTimeDurationPicker) Update(msg tea.Msg) (DateTimeDurationPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DateTimeChangedMsg:
		switch msg.ID {
		case m.startInput.ID():
			if msg.DateTime == nil {
				m.rng.ClearStart()
			} else if m.rng.State() == timekit.RangeComplete {
				// Carry the span along with the start.
				span := m.rng.Duration().Seconds()
				m.rng.SetStart(*msg.DateTime)
				m.rng.SetEnd(msg.DateTime.AddSeconds(span))
			} else {
				m.rng.SetStart(*msg.DateTime)
			}
		case m.endInput.ID():
			if msg.DateTime == nil {
				m.rng.ClearEnd()
			} else {
				m.rng.SetEnd(*msg.DateTime)
			}
		default:
			return m, nil
		}
		m.syncViews()
		return m, m.emit()

	case DurationChangedMsg:
		if msg.ID != m.durInput.ID() || msg.Duration == nil {
			return m, nil
		}
		start, ok := m.rng.Start()
		if !ok {
			start = timekit.Now()
			m.rng.SetStart(start)
		}
		m.rng.SetEnd(start.AddSeconds(msg.Duration.Seconds()))
		m.syncViews()
		return m, m.emit()

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.Clear):
			m.rng.Reset()
			m.syncViews()
			return m, m.emit()
		case key.Matches(msg, m.KeyMap.Next):
			return m, m.cycle(1)
		case key.Matches(msg, m.KeyMap.Prev):
			return m, m.cycle(-1)
		}
	}

	var cmd tea.Cmd
	switch m.field {
	case 1:
		m.durInput, cmd = m.durInput.Update(msg)
	case 2:
		m.endInput, cmd = m.endInput.Update(msg)
	default:
		m.startInput, cmd = m.startInput.Update(msg)
	}
	return m, cmd
}

func (m DateTimeDurationPicker) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.startInput.View(),
		m.Styles.Separator.Render(" + "),
		m.durInput.View(),
		m.Styles.Separator.Render(" = "),
		m.endInput.View(),
	)
}
