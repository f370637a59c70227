package pickers

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timepiece/timekit"
)

// DatePicker pairs a DateInput with an expandable DateSelect dialog.
// Typing, spinning with up/down and picking from the calendar all land in
// the same value; every change is announced with a DateChangedMsg carrying
// the picker id.
type DatePicker struct {
	KeyMap KeyMap
	Styles Styles

	id       string
	input    DateInput
	dialog   DateSelect
	expanded bool
	focused  bool
}

// NewDatePicker builds an empty date picker. weekStart picks the calendar
// column the dialog weeks begin on.
func NewDatePicker(id string, weekStart time.Weekday) DatePicker {
	return DatePicker{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
		id:     id,
		input:  NewDateInput(id),
		dialog: NewDateSelect(id+".select", timekit.Today(), weekStart),
	}
}

func (m DatePicker) ID() string          { return m.id }
func (m DatePicker) Date() *timekit.Date { return m.date() }
func (m DatePicker) Expanded() bool      { return m.expanded }
func (m DatePicker) Focused() bool       { return m.focused }
func (m DatePicker) Init() tea.Cmd       { return m.input.Init() }

func (m DatePicker) date() *timekit.Date { return m.input.Date() }

// SetDate replaces the value without emitting a change message.
func (m *DatePicker) SetDate(d *timekit.Date) {
	m.input.SetDate(d)
	m.syncDialog()
}

func (m *DatePicker) Focus() tea.Cmd {
	m.focused = true
	if m.expanded {
		m.dialog.Focus()
		return nil
	}
	return m.input.Focus()
}

func (m *DatePicker) Blur() {
	m.focused = false
	m.input.Blur()
	m.dialog.Blur()
}

func (m *DatePicker) syncDialog() {
	m.dialog.SetRange(m.date(), nil)
	if d := m.date(); d != nil {
		m.dialog.ShowDate(*d)
	}
}

func (m *DatePicker) toggle() {
	m.expanded = !m.expanded
	if m.expanded {
		m.input.Blur()
		m.dialog.Focus()
		m.syncDialog()
	} else {
		m.dialog.Blur()
		m.input.Focus()
	}
}

func (m DatePicker) emit() tea.Cmd {
	return cmdOf(DateChangedMsg{ID: m.id, Date: m.date()})
}

func (m DatePicker) Update(msg tea.Msg) (DatePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DaySelectedMsg:
		if msg.ID != m.dialog.ID() {
			return m, nil
		}
		date := msg.Date
		m.input.SetDate(&date)
		m.dialog.SetRange(&date, nil)
		return m, m.emit()

	case DateChangedMsg:
		// Keep the calendar highlight in step with typed edits.
		if msg.ID == m.id {
			m.dialog.SetRange(msg.Date, nil)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.Toggle):
			m.toggle()
			return m, nil
		case key.Matches(msg, m.KeyMap.Clear):
			m.input.SetDate(nil)
			m.dialog.SetRange(nil, nil)
			return m, m.emit()
		case key.Matches(msg, m.KeyMap.Today):
			today := timekit.Today()
			m.SetDate(&today)
			return m, m.emit()
		}
	}

	var cmd tea.Cmd
	if m.expanded {
		m.dialog, cmd = m.dialog.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m DatePicker) View() string {
	line := m.input.View()
	if !m.expanded {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, m.dialog.View())
}
