package pickers

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"timepiece/timekit"
)

const (
	timeSelectCols = 6
	timeSelectRows = 8
)

// TimeSelect is a grid of the 48 half-hour marks of a day. Enter on a
// cell emits TimeSelectedMsg; space marks it as a range end.
type TimeSelect struct {
	KeyMap KeyMap
	Styles Styles

	id      string
	focused bool
	row     int
	col     int
}

// NewTimeSelect builds the grid with the cursor at midnight.
func NewTimeSelect(id string) TimeSelect {
	return TimeSelect{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
		id:     id,
	}
}

func (m TimeSelect) ID() string    { return m.id }
func (m TimeSelect) Focused() bool { return m.focused }
func (m *TimeSelect) Focus()       { m.focused = true }
func (m *TimeSelect) Blur()        { m.focused = false }
func (m TimeSelect) Init() tea.Cmd { return nil }

func cellTime(row, col int) timekit.Time {
	halfHours := row*timeSelectCols + col
	return timekit.TimeFromSecondOfDay(halfHours * 30 * 60)
}

// ShowTime parks the cursor on the half-hour mark at or before t.
func (m *TimeSelect) ShowTime(t timekit.Time) {
	halfHours := t.SecondOfDay() / (30 * 60)
	m.row = halfHours / timeSelectCols
	m.col = halfHours % timeSelectCols
}

func (m TimeSelect) Update(msg tea.Msg) (TimeSelect, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(keyMsg, m.KeyMap.Down):
		if m.row < timeSelectRows-1 {
			m.row++
		}
	case key.Matches(keyMsg, m.KeyMap.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(keyMsg, m.KeyMap.Right):
		if m.col < timeSelectCols-1 {
			m.col++
		}
	case key.Matches(keyMsg, m.KeyMap.Select):
		return m, cmdOf(TimeSelectedMsg{ID: m.id, Time: cellTime(m.row, m.col)})
	case key.Matches(keyMsg, m.KeyMap.SelectEnd):
		return m, cmdOf(TimeSelectedMsg{ID: m.id, Time: cellTime(m.row, m.col), End: true})
	}
	return m, nil
}

func (m TimeSelect) View() string {
	var b strings.Builder
	for r := 0; r < timeSelectRows; r++ {
		for c := 0; c < timeSelectCols; c++ {
			t := cellTime(r, c)
			style := m.Styles.Button
			if m.focused && m.row == r && m.col == c {
				style = m.Styles.CursorButton
			}
			b.WriteString(style.Render(" " + timekit.FormatSeconds(t.SecondOfDay(), false) + " "))
		}
		if r < timeSelectRows-1 {
			b.WriteByte('\n')
		}
	}
	return m.Styles.Dialog.Render(b.String())
}
