package pickers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timepiece/timekit"
)

// selectScope is the zoom level of a DateSelect. Zooming out widens the
// view from days to months, years and decades; selecting a cell zooms
// back in.
type selectScope int

const (
	scopeMonth selectScope = iota
	scopeYear
	scopeDecade
	scopeCentury
)

const headerRow = -1

// DateSelect is a navigable calendar dialog. Arrow keys move a cursor over
// the day grid and the header controls, enter selects, backspace zooms out
// to coarser scopes. Selecting a day emits DaySelectedMsg; space marks the
// selection as a range end.
type DateSelect struct {
	KeyMap KeyMap
	Styles Styles

	id        string
	focused   bool
	scope     selectScope
	year      int
	month     time.Month
	weekStart time.Weekday

	// cursorRow == headerRow puts the cursor on the prev/title/today/next
	// row.
	cursorRow int
	cursorCol int

	start *timekit.Date
	end   *timekit.Date

	grid []timekit.WeekRow
}

// NewDateSelect builds a calendar dialog showing the month of the given
// date, with the cursor parked on that day.
func NewDateSelect(id string, anchor timekit.Date, weekStart time.Weekday) DateSelect {
	m := DateSelect{
		KeyMap:    DefaultKeyMap(),
		Styles:    DefaultStyles(),
		id:        id,
		weekStart: weekStart,
	}
	m.setMonth(anchor.Year, anchor.Month)
	m.moveCursorTo(anchor.Day)
	return m
}

func (m DateSelect) ID() string                    { return m.id }
func (m DateSelect) Focused() bool                 { return m.focused }
func (m *DateSelect) Focus()                       { m.focused = true }
func (m *DateSelect) Blur()                        { m.focused = false }
func (m DateSelect) Month() (int, time.Month)      { return m.year, m.month }
func (m DateSelect) Init() tea.Cmd                 { return nil }

// SetRange updates the highlighted span. Either endpoint may be nil.
func (m *DateSelect) SetRange(start, end *timekit.Date) {
	m.start = start
	m.end = end
}

// ShowDate navigates to the month containing d and puts the cursor on it.
func (m *DateSelect) ShowDate(d timekit.Date) {
	m.scope = scopeMonth
	m.setMonth(d.Year, d.Month)
	m.moveCursorTo(d.Day)
}

func (m *DateSelect) setMonth(year int, month time.Month) {
	grid, err := timekit.MonthGrid(year, month, m.weekStart)
	if err != nil {
		return
	}
	m.year = year
	m.month = month
	m.grid = grid
	rows, cols := m.gridSize()
	if m.cursorRow >= rows {
		m.cursorRow = rows - 1
	}
	if m.cursorCol >= cols {
		m.cursorCol = cols - 1
	}
}

func (m *DateSelect) moveCursorTo(day int) {
	for r, week := range m.grid {
		for c, d := range week {
			if d == day {
				m.cursorRow, m.cursorCol = r, c
				return
			}
		}
	}
}

// gridSize reports the cursor-addressable grid below the header. Coarser
// scopes use a fixed 4x3 layout of months, years or decades.
func (m DateSelect) gridSize() (rows, cols int) {
	if m.scope == scopeMonth {
		return len(m.grid), 7
	}
	return 4, 3
}

func (m DateSelect) Update(msg tea.Msg) (DateSelect, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		if m.cursorRow > headerRow {
			m.cursorRow--
			if m.cursorRow == headerRow && m.cursorCol > 3 {
				m.cursorCol = 3
			}
		}
	case key.Matches(keyMsg, m.KeyMap.Down):
		rows, _ := m.gridSize()
		if m.cursorRow < rows-1 {
			m.cursorRow++
		}
	case key.Matches(keyMsg, m.KeyMap.Left):
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case key.Matches(keyMsg, m.KeyMap.Right):
		_, cols := m.gridSize()
		if m.cursorRow == headerRow {
			cols = 4
		}
		if m.cursorCol < cols-1 {
			m.cursorCol++
		}
	case key.Matches(keyMsg, m.KeyMap.ZoomOut):
		m.zoomOut()
	case key.Matches(keyMsg, m.KeyMap.Today):
		m.ShowDate(timekit.Today())
	case key.Matches(keyMsg, m.KeyMap.Select):
		return m.selectCursor(false)
	case key.Matches(keyMsg, m.KeyMap.SelectEnd):
		return m.selectCursor(true)
	}
	return m, nil
}

func (m *DateSelect) zoomOut() {
	if m.scope < scopeCentury {
		m.scope++
		m.cursorRow, m.cursorCol = 0, 0
	}
}

func (m DateSelect) selectCursor(asEnd bool) (DateSelect, tea.Cmd) {
	if m.cursorRow == headerRow {
		switch m.cursorCol {
		case 0:
			m.shift(-1)
		case 1:
			m.zoomOut()
		case 2:
			m.ShowDate(timekit.Today())
		case 3:
			m.shift(1)
		}
		return m, nil
	}

	switch m.scope {
	case scopeMonth:
		day := m.grid[m.cursorRow][m.cursorCol]
		if day == 0 {
			return m, nil
		}
		date, err := timekit.NewDate(m.year, m.month, day)
		if err != nil {
			return m, nil
		}
		return m, cmdOf(DaySelectedMsg{ID: m.id, Date: date, End: asEnd})
	case scopeYear:
		m.month = time.Month(m.cursorRow*3 + m.cursorCol + 1)
		m.scope = scopeMonth
		m.setMonth(m.year, m.month)
		m.cursorRow, m.cursorCol = 0, 0
	case scopeDecade:
		year := m.decadeBase() + m.cursorRow*3 + m.cursorCol - 1
		if year >= timekit.MinYear && year <= timekit.MaxYear {
			m.year = year
			m.scope = scopeYear
			m.cursorRow, m.cursorCol = 0, 0
		}
	case scopeCentury:
		decade := m.centuryBase() + (m.cursorRow*3+m.cursorCol-1)*10
		if decade >= timekit.MinYear && decade <= timekit.MaxYear {
			m.year = decade
			m.scope = scopeDecade
			m.cursorRow, m.cursorCol = 0, 0
		}
	}
	return m, nil
}

// shift moves the view one step at the current scope: a month, a year, a
// decade or a century. Steps past the supported year range are ignored.
func (m *DateSelect) shift(dir int) {
	switch m.scope {
	case scopeMonth:
		year, month, err := timekit.ShiftMonth(m.year, m.month, dir)
		if err != nil {
			return
		}
		m.setMonth(year, month)
	case scopeYear:
		m.shiftYear(dir)
	case scopeDecade:
		m.shiftYear(dir * 10)
	case scopeCentury:
		m.shiftYear(dir * 100)
	}
}

func (m *DateSelect) shiftYear(delta int) {
	year := m.year + delta
	if year >= timekit.MinYear && year <= timekit.MaxYear {
		m.setMonth(year, m.month)
	}
}

func (m DateSelect) decadeBase() int  { return m.year - m.year%10 }
func (m DateSelect) centuryBase() int { return m.year - m.year%100 }

func (m DateSelect) title() string {
	switch m.scope {
	case scopeMonth:
		return fmt.Sprintf("%s %d", m.month, m.year)
	case scopeYear:
		return fmt.Sprintf("%d", m.year)
	case scopeDecade:
		return fmt.Sprintf("%d - %d", m.decadeBase(), m.decadeBase()+9)
	default:
		return fmt.Sprintf("%d - %d", m.centuryBase(), m.centuryBase()+99)
	}
}

func (m DateSelect) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteByte('\n')
	if m.scope == scopeMonth {
		b.WriteString(m.monthView())
	} else {
		b.WriteString(m.coarseView())
	}
	return m.Styles.Dialog.Render(b.String())
}

func (m DateSelect) headerView() string {
	cells := []string{"←", m.title(), "◎", "→"}
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		style := m.Styles.Header
		if m.focused && m.cursorRow == headerRow && m.cursorCol == i {
			style = m.Styles.CursorButton
		}
		rendered[i] = style.Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		rendered[0], " ", rendered[1], " ", rendered[2], " ", rendered[3])
}

func (m DateSelect) monthView() string {
	var b strings.Builder

	day := timekit.Date{Year: 2024, Month: time.January, Day: 1}
	for day.Weekday() != m.weekStart {
		day = day.AddDays(1)
	}
	for i := 0; i < 7; i++ {
		b.WriteString(m.Styles.Weekday.Render(day.Weekday().String()[:2] + " "))
		day = day.AddDays(1)
	}
	b.WriteByte('\n')

	today := timekit.Today()
	for r, week := range m.grid {
		for c, d := range week {
			if d == 0 {
				b.WriteString(m.Styles.OtherDay.Render("   "))
				continue
			}
			date := timekit.Date{Year: m.year, Month: m.month, Day: d}
			b.WriteString(m.dayStyle(date, today, r, c).Render(fmt.Sprintf("%2d ", d)))
		}
		if r < len(m.grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m DateSelect) dayStyle(date, today timekit.Date, row, col int) lipgloss.Style {
	if m.focused && m.cursorRow == row && m.cursorCol == col {
		return m.Styles.CursorDay
	}
	switch {
	case m.start != nil && date == *m.start:
		return m.Styles.StartDay
	case m.end != nil && date == *m.end:
		return m.Styles.EndDay
	case m.start != nil && m.end != nil && date.After(*m.start) && date.Before(*m.end):
		return m.Styles.RangeDay
	case date == today:
		return m.Styles.TodayDay
	}
	return m.Styles.Day
}

func (m DateSelect) coarseView() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		for c := 0; c < 3; c++ {
			label := m.coarseLabel(r, c)
			style := m.Styles.Button
			if m.focused && m.cursorRow == r && m.cursorCol == c {
				style = m.Styles.CursorButton
			}
			b.WriteString(style.Render(fmt.Sprintf(" %-9s", label)))
		}
		if r < 3 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m DateSelect) coarseLabel(row, col int) string {
	idx := row*3 + col
	switch m.scope {
	case scopeYear:
		return time.Month(idx + 1).String()[:3]
	case scopeDecade:
		return fmt.Sprintf("%d", m.decadeBase()+idx-1)
	default:
		return fmt.Sprintf("%ds", m.centuryBase()+(idx-1)*10)
	}
}
