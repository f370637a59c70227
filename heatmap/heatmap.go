// Package heatmap renders a year of daily activity as a calendar heatmap
// with a keyboard cursor that can walk days, weeks or months.
package heatmap

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timepiece/timekit"
)

// CursorMode selects what the heatmap cursor spans and what Select emits.
type CursorMode int

const (
	ModeDay CursorMode = iota
	ModeWeek
	ModeMonth
)

func (m CursorMode) String() string {
	switch m {
	case ModeDay:
		return "day"
	case ModeWeek:
		return "week"
	default:
		return "month"
	}
}

// DaySelectedMsg is emitted when a day cell is chosen in day mode.
type DaySelectedMsg struct {
	Date  timekit.Date
	Value float64
}

// WeekSelectedMsg is emitted in week mode. Week is the 1-based column of
// the Monday-aligned grid.
type WeekSelectedMsg struct {
	Year  int
	Week  int
	Total float64
}

// MonthSelectedMsg is emitted in month mode.
type MonthSelectedMsg struct {
	Year  int
	Month time.Month
	Total float64
}

// YearChangedMsg is emitted by the Manager whenever the displayed year
// moves.
type YearChangedMsg struct {
	Year int
}

// KeyMap holds the heatmap cursor bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Mode   key.Binding
	Reset  key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous weekday")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next weekday")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous week")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next week")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Mode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "cursor mode")),
		Reset:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "day mode")),
	}
}

// Styles carries the lipgloss styles of the heatmap.
type Styles struct {
	// Levels maps bucketed intensity, zero to full, onto cell styles.
	Levels  [5]lipgloss.Style
	Empty   lipgloss.Style
	Cursor  lipgloss.Style
	Label   lipgloss.Style
	Tooltip lipgloss.Style
}

// DefaultStyles returns the stock green-on-dark theme.
func DefaultStyles() Styles {
	level := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Levels: [5]lipgloss.Style{
			level("#333333"),
			level("#005500"),
			level("#00aa00"),
			level("#00ff00"),
			level("#88ff88"),
		},
		Empty:   level("#222222"),
		Cursor:  lipgloss.NewStyle().Reverse(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Tooltip: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// Model is a year-at-a-glance activity heatmap. Columns are Monday-aligned
// weeks, rows are weekdays. Values are arbitrary per-day quantities;
// rendering buckets them against the year's maximum.
type Model struct {
	KeyMap KeyMap
	Styles Styles

	year   int
	grid   [][7]*timekit.Date
	values map[timekit.Date]float64
	max    float64

	mode       CursorMode
	cursorWeek int
	cursorDay  int
	focused    bool
}

// New builds an empty heatmap for the given year.
func New(year int) (Model, error) {
	grid, err := timekit.YearGrid(year)
	if err != nil {
		return Model{}, err
	}
	return Model{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
		year:   year,
		grid:   grid,
		values: make(map[timekit.Date]float64),
	}, nil
}

func (m Model) Year() int        { return m.year }
func (m Model) Mode() CursorMode { return m.mode }
func (m Model) Weeks() int       { return len(m.grid) }
func (m Model) Focused() bool    { return m.focused }
func (m *Model) Focus()          { m.focused = true }
func (m *Model) Blur()           { m.focused = false }
func (m Model) Init() tea.Cmd    { return nil }

// SetYear rebuilds the grid for a new year, keeping values and clamping
// the cursor.
func (m *Model) SetYear(year int) error {
	grid, err := timekit.YearGrid(year)
	if err != nil {
		return err
	}
	m.year = year
	m.grid = grid
	if m.cursorWeek >= len(grid) {
		m.cursorWeek = len(grid) - 1
	}
	return nil
}

// SetValues replaces all per-day values.
func (m *Model) SetValues(values map[timekit.Date]float64) {
	m.values = make(map[timekit.Date]float64, len(values))
	m.max = 0
	for d, v := range values {
		m.Add(d, v)
	}
}

// Add accumulates v onto the value for d. Days outside the displayed year
// still accumulate and show up after SetYear.
func (m *Model) Add(d timekit.Date, v float64) {
	m.values[d] += v
	if m.values[d] > m.max {
		m.max = m.values[d]
	}
}

// Value returns the accumulated value for d.
func (m Model) Value(d timekit.Date) float64 { return m.values[d] }

// CursorDate returns the date under the cursor, nil on a pad cell.
func (m Model) CursorDate() *timekit.Date {
	if m.cursorWeek < 0 || m.cursorWeek >= len(m.grid) {
		return nil
	}
	return m.grid[m.cursorWeek][m.cursorDay]
}

// SumWeek totals the values of the 1-based grid column.
func (m Model) SumWeek(week int) float64 {
	if week < 1 || week > len(m.grid) {
		return 0
	}
	var total float64
	for _, d := range m.grid[week-1] {
		if d != nil {
			total += m.values[*d]
		}
	}
	return total
}

// SumMonth totals the values of a month of the displayed year.
func (m Model) SumMonth(month time.Month) float64 {
	var total float64
	for _, week := range m.grid {
		for _, d := range week {
			if d != nil && d.Month == month {
				total += m.values[*d]
			}
		}
	}
	return total
}

// MoveTo puts the cursor on the cell holding d if it is in the displayed
// year.
func (m *Model) MoveTo(d timekit.Date) {
	for w, week := range m.grid {
		for i, cell := range week {
			if cell != nil && *cell == d {
				m.cursorWeek, m.cursorDay = w, i
				return
			}
		}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		if m.cursorDay > 0 {
			m.cursorDay--
		}
	case key.Matches(keyMsg, m.KeyMap.Down):
		if m.cursorDay < 6 {
			m.cursorDay++
		}
	case key.Matches(keyMsg, m.KeyMap.Left):
		m.moveWeeks(-1)
	case key.Matches(keyMsg, m.KeyMap.Right):
		m.moveWeeks(1)
	case key.Matches(keyMsg, m.KeyMap.Mode):
		m.mode = (m.mode + 1) % 3
	case key.Matches(keyMsg, m.KeyMap.Reset):
		m.mode = ModeDay
	case key.Matches(keyMsg, m.KeyMap.Select):
		return m, m.selectCursor()
	}
	return m, nil
}

// moveWeeks steps the cursor column; in month mode it jumps to the first
// week of the adjacent month instead.
func (m *Model) moveWeeks(dir int) {
	if m.mode == ModeMonth {
		if d := m.CursorDate(); d != nil {
			m.MoveTo(timekit.Date{Year: m.year, Month: d.Month, Day: 1}.AddMonths(dir))
			return
		}
	}
	next := m.cursorWeek + dir
	if next >= 0 && next < len(m.grid) {
		m.cursorWeek = next
	}
}

func (m Model) selectCursor() tea.Cmd {
	d := m.CursorDate()
	if d == nil {
		return nil
	}
	var msg tea.Msg
	switch m.mode {
	case ModeDay:
		msg = DaySelectedMsg{Date: *d, Value: m.values[*d]}
	case ModeWeek:
		msg = WeekSelectedMsg{Year: m.year, Week: m.cursorWeek + 1, Total: m.SumWeek(m.cursorWeek + 1)}
	default:
		msg = MonthSelectedMsg{Year: m.year, Month: d.Month, Total: m.SumMonth(d.Month)}
	}
	return func() tea.Msg { return msg }
}

// level buckets a value against the year maximum, zero through four.
func (m Model) level(v float64) int {
	if v <= 0 || m.max <= 0 {
		return 0
	}
	switch ratio := v / m.max; {
	case ratio < 0.25:
		return 1
	case ratio < 0.5:
		return 2
	case ratio < 0.75:
		return 3
	default:
		return 4
	}
}

const cellWidth = 2

// underCursor reports whether the cell belongs to the cursor's current
// day, week or month span.
func (m Model) underCursor(week, day int) bool {
	switch m.mode {
	case ModeDay:
		return week == m.cursorWeek && day == m.cursorDay
	case ModeWeek:
		return week == m.cursorWeek
	default:
		cur := m.CursorDate()
		cell := m.grid[week][day]
		return cur != nil && cell != nil && cell.Month == cur.Month
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.monthRow())
	b.WriteByte('\n')

	labels := [7]string{"Mon", "", "Wed", "", "Fri", "", "Sun"}
	for day := 0; day < 7; day++ {
		b.WriteString(m.Styles.Label.Render(fmt.Sprintf("%-4s", labels[day])))
		for week := range m.grid {
			b.WriteString(m.cell(week, day))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.weekRow())
	b.WriteByte('\n')
	b.WriteString(m.tooltip())
	return b.String()
}

func (m Model) cell(week, day int) string {
	d := m.grid[week][day]
	if d == nil {
		return m.Styles.Empty.Render(strings.Repeat(" ", cellWidth))
	}
	style := m.Styles.Levels[m.level(m.values[*d])]
	if m.focused && m.underCursor(week, day) {
		style = m.Styles.Cursor
	}
	return style.Render("██")
}

// monthRow labels the week column where each month begins.
func (m Model) monthRow() string {
	cols := make([]string, len(m.grid))
	for i := range cols {
		cols[i] = strings.Repeat(" ", cellWidth)
	}
	for week, row := range m.grid {
		for _, d := range row {
			if d != nil && d.Day == 1 {
				cols[week] = d.Month.String()[:cellWidth]
			}
		}
	}
	return m.Styles.Label.Render(strings.Repeat(" ", 4) + strings.Join(cols, ""))
}

// weekRow labels every fourth week column with its 1-based number.
func (m Model) weekRow() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 4))
	for week := range m.grid {
		if week%4 == 0 {
			b.WriteString(fmt.Sprintf("%-*d", cellWidth, week+1))
		} else {
			b.WriteString(strings.Repeat(" ", cellWidth))
		}
	}
	return m.Styles.Label.Render(b.String())
}

func (m Model) tooltip() string {
	d := m.CursorDate()
	if d == nil {
		return m.Styles.Tooltip.Render(fmt.Sprintf("%d", m.year))
	}
	switch m.mode {
	case ModeWeek:
		return m.Styles.Tooltip.Render(
			fmt.Sprintf("week %d of %d: %.1f", m.cursorWeek+1, m.year, m.SumWeek(m.cursorWeek+1)))
	case ModeMonth:
		return m.Styles.Tooltip.Render(
			fmt.Sprintf("%s %d: %.1f", d.Month, m.year, m.SumMonth(d.Month)))
	default:
		return m.Styles.Tooltip.Render(fmt.Sprintf("%s: %.1f", d, m.values[*d]))
	}
}
