package pickers

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timepiece/timekit"
)

// DateTimePicker pairs a DateTimeInput with a calendar and a half-hour
// grid shown side by side when expanded. Tab moves between the two
// dialogs; picking a day keeps the time part and picking a time keeps the
// date part. Changes are announced with DateTimeChangedMsg.
type DateTimePicker struct {
	KeyMap KeyMap
	Styles Styles

	id         string
	input      DateTimeInput
	dateDialog DateSelect
	timeDialog TimeSelect
	expanded   bool
	focused    bool
	onTime     bool // which dialog holds focus while expanded
}

// NewDateTimePicker builds an empty datetime picker.
func NewDateTimePicker(id string, weekStart time.Weekday) DateTimePicker {
	return DateTimePicker{
		KeyMap:     DefaultKeyMap(),
		Styles:     DefaultStyles(),
		id:         id,
		input:      NewDateTimeInput(id),
		dateDialog: NewDateSelect(id+".date", timekit.Today(), weekStart),
		timeDialog: NewTimeSelect(id + ".time"),
	}
}

func (m DateTimePicker) ID() string                  { return m.id }
func (m DateTimePicker) DateTime() *timekit.DateTime { return m.input.DateTime() }
func (m DateTimePicker) Expanded() bool              { return m.expanded }
func (m DateTimePicker) Focused() bool               { return m.focused }
func (m DateTimePicker) Init() tea.Cmd               { return m.input.Init() }

// SetDateTime replaces the value without emitting a change message.
func (m *DateTimePicker) SetDateTime(dt *timekit.DateTime) {
	m.input.SetDateTime(dt)
	m.syncDialogs()
}

func (m *DateTimePicker) syncDialogs() {
	if dt := m.input.DateTime(); dt != nil {
		m.dateDialog.SetRange(&dt.Date, nil)
		m.dateDialog.ShowDate(dt.Date)
		m.timeDialog.ShowTime(dt.Time)
	} else {
		m.dateDialog.SetRange(nil, nil)
	}
}

func (m *DateTimePicker) Focus() tea.Cmd {
	m.focused = true
	if m.expanded {
		m.focusDialog()
		return nil
	}
	return m.input.Focus()
}

func (m *DateTimePicker) Blur() {
	m.focused = false
	m.input.Blur()
	m.dateDialog.Blur()
	m.timeDialog.Blur()
}

func (m *DateTimePicker) focusDialog() {
	if m.onTime {
		m.dateDialog.Blur()
		m.timeDialog.Focus()
	} else {
		m.timeDialog.Blur()
		m.dateDialog.Focus()
	}
}

func (m *DateTimePicker) toggle() {
	m.expanded = !m.expanded
	if m.expanded {
		m.input.Blur()
		m.syncDialogs()
		m.focusDialog()
	} else {
		m.dateDialog.Blur()
		m.timeDialog.Blur()
		m.input.Focus()
	}
}

// current returns the value edits apply to, defaulting to midnight today
// when the picker is empty.
func (m DateTimePicker) current() timekit.DateTime {
	if dt := m.input.DateTime(); dt != nil {
		return *dt
	}
	return timekit.DateTime{Date: timekit.Today()}
}

func (m DateTimePicker) emit() tea.Cmd {
	return cmdOf(DateTimeChangedMsg{ID: m.id, DateTime: m.input.DateTime()})
}

func (m DateTimePicker) Update(msg tea.Msg) (DateTimePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DaySelectedMsg:
		if msg.ID != m.dateDialog.ID() {
			return m, nil
		}
		next := m.current().WithDate(msg.Date)
		m.input.SetDateTime(&next)
		m.dateDialog.SetRange(&next.Date, nil)
		return m, m.emit()

	case TimeSelectedMsg:
		if msg.ID != m.timeDialog.ID() {
			return m, nil
		}
		next := m.current().WithTime(msg.Time)
		m.input.SetDateTime(&next)
		return m, m.emit()

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.Toggle):
			m.toggle()
			return m, nil
		case key.Matches(msg, m.KeyMap.Clear):
			m.input.SetDateTime(nil)
			m.dateDialog.SetRange(nil, nil)
			return m, m.emit()
		case key.Matches(msg, m.KeyMap.Today):
			now := timekit.Now()
			m.SetDateTime(&now)
			return m, m.emit()
		case key.Matches(msg, m.KeyMap.Next), key.Matches(msg, m.KeyMap.Prev):
			if m.expanded {
				m.onTime = !m.onTime
				m.focusDialog()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch {
	case m.expanded && m.onTime:
		m.timeDialog, cmd = m.timeDialog.Update(msg)
	case m.expanded:
		m.dateDialog, cmd = m.dateDialog.Update(msg)
	default:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m DateTimePicker) View() string {
	line := m.input.View()
	if !m.expanded {
		return line
	}
	dialogs := lipgloss.JoinHorizontal(lipgloss.Top, m.dateDialog.View(), m.timeDialog.View())
	return lipgloss.JoinVertical(lipgloss.Left, line, dialogs)
}
