package pickers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timepiece/timekit"
)

// TimePicker pairs a TimeInput with an expandable half-hour TimeSelect
// grid. Changes are announced with TimeChangedMsg.
type TimePicker struct {
	KeyMap KeyMap
	Styles Styles

	id       string
	input    TimeInput
	dialog   TimeSelect
	expanded bool
	focused  bool
}

// NewTimePicker builds an empty time picker.
func NewTimePicker(id string) TimePicker {
	return TimePicker{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
		id:     id,
		input:  NewTimeInput(id),
		dialog: NewTimeSelect(id + ".select"),
	}
}

func (m TimePicker) ID() string          { return m.id }
func (m TimePicker) Time() *timekit.Time { return m.input.Time() }
func (m TimePicker) Expanded() bool      { return m.expanded }
func (m TimePicker) Focused() bool       { return m.focused }
func (m TimePicker) Init() tea.Cmd       { return m.input.Init() }

// SetTime replaces the value without emitting a change message.
func (m *TimePicker) SetTime(t *timekit.Time) {
	m.input.SetTime(t)
	if t != nil {
		m.dialog.ShowTime(*t)
	}
}

func (m *TimePicker) Focus() tea.Cmd {
	m.focused = true
	if m.expanded {
		m.dialog.Focus()
		return nil
	}
	return m.input.Focus()
}

func (m *TimePicker) Blur() {
	m.focused = false
	m.input.Blur()
	m.dialog.Blur()
}

func (m *TimePicker) toggle() {
	m.expanded = !m.expanded
	if m.expanded {
		m.input.Blur()
		m.dialog.Focus()
		if t := m.input.Time(); t != nil {
			m.dialog.ShowTime(*t)
		}
	} else {
		m.dialog.Blur()
		m.input.Focus()
	}
}

func (m TimePicker) emit() tea.Cmd {
	return cmdOf(TimeChangedMsg{ID: m.id, Time: m.input.Time()})
}

func (m TimePicker) Update(msg tea.Msg) (TimePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeSelectedMsg:
		if msg.ID != m.dialog.ID() {
			return m, nil
		}
		t := msg.Time
		m.input.SetTime(&t)
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
			m.input.SetTime(nil)
			return m, m.emit()
		case key.Matches(msg, m.KeyMap.Today):
			now := timekit.Now().Time
			m.SetTime(&now)
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

func (m TimePicker) View() string {
	line := m.input.View()
	if !m.expanded {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, m.dialog.View())
}

// DurationPicker pairs a DurationInput with a DurationSelect adjuster
// grid. Adjustments saturate at the 99:59:59 cap and floor at zero;
// changes are announced with DurationChangedMsg.
type DurationPicker struct {
	KeyMap KeyMap
	Styles Styles

	id       string
	input    DurationInput
	dialog   DurationSelect
	expanded bool
	focused  bool
}

// NewDurationPicker builds an empty duration picker.
func NewDurationPicker(id string) DurationPicker {
	return DurationPicker{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
		id:     id,
		input:  NewDurationInput(id),
		dialog: NewDurationSelect(id + ".select"),
	}
}

func (m DurationPicker) ID() string                  { return m.id }
func (m DurationPicker) Duration() *timekit.Duration { return m.input.Duration() }
func (m DurationPicker) Expanded() bool              { return m.expanded }
func (m DurationPicker) Focused() bool               { return m.focused }
func (m DurationPicker) Init() tea.Cmd               { return m.input.Init() }

// SetDuration replaces the value without emitting a change message.
func (m *DurationPicker) SetDuration(d *timekit.Duration) {
	m.input.SetDuration(d)
}

func (m *DurationPicker) Focus() tea.Cmd {
	m.focused = true
	if m.expanded {
		m.dialog.Focus()
		return nil
	}
	return m.input.Focus()
}

func (m *DurationPicker) Blur() {
	m.focused = false
	m.input.Blur()
	m.dialog.Blur()
}

func (m *DurationPicker) toggle() {
	m.expanded = !m.expanded
	if m.expanded {
		m.input.Blur()
		m.dialog.Focus()
	} else {
		m.dialog.Blur()
		m.input.Focus()
	}
}

func (m DurationPicker) current() timekit.Duration {
	if d := m.input.Duration(); d != nil {
		return *d
	}
	return timekit.Duration{}
}

func (m DurationPicker) emit() tea.Cmd {
	return cmdOf(DurationChangedMsg{ID: m.id, Duration: m.input.Duration()})
}

func (m DurationPicker) Update(msg tea.Msg) (DurationPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DurationAdjustedMsg:
		if msg.ID != m.dialog.ID() {
			return m, nil
		}
		next := m.current().AddSeconds(msg.DeltaSeconds)
		m.input.SetDuration(&next)
		return m, m.emit()

	case DurationRoundedMsg:
		if msg.ID != m.dialog.ID() {
			return m, nil
		}
		next := m.current().Round(msg.Minutes)
		m.input.SetDuration(&next)
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
			m.input.SetDuration(nil)
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

func (m DurationPicker) View() string {
	line := m.input.View()
	if !m.expanded {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, m.dialog.View())
}
