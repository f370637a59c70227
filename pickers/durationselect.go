package pickers

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// durationCell is one button of the DurationSelect dialog: either a
// relative adjustment in seconds or a rounding unit in minutes.
type durationCell struct {
	label   string
	delta   int
	roundTo int
}

var durationGrid = [][]durationCell{
	{
		{label: "round :05", roundTo: 5},
		{label: "round :15", roundTo: 15},
		{label: "round :30", roundTo: 30},
		{label: "round :60", roundTo: 60},
	},
	{
		{label: "-6h", delta: -6 * 3600},
		{label: "-1h", delta: -3600},
		{label: "-15m", delta: -15 * 60},
		{label: "-1m", delta: -60},
	},
	{
		{label: "+1m", delta: 60},
		{label: "+15m", delta: 15 * 60},
		{label: "+1h", delta: 3600},
		{label: "+6h", delta: 6 * 3600},
	},
}

// DurationSelect is a button-grid dialog for nudging a duration. The top
// row rounds to a minute unit, the lower rows add or subtract fixed
// amounts. It owns no duration itself; the enclosing picker applies the
// emitted adjustments.
type DurationSelect struct {
	KeyMap KeyMap
	Styles Styles

	id      string
	focused bool
	row     int
	col     int
}

// NewDurationSelect builds the dialog with the cursor on the first cell.
func NewDurationSelect(id string) DurationSelect {
	return DurationSelect{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
		id:     id,
	}
}

func (m DurationSelect) ID() string      { return m.id }
func (m DurationSelect) Focused() bool   { return m.focused }
func (m *DurationSelect) Focus()         { m.focused = true }
func (m *DurationSelect) Blur()          { m.focused = false }
func (m DurationSelect) Init() tea.Cmd   { return nil }

func (m DurationSelect) Update(msg tea.Msg) (DurationSelect, tea.Cmd) {
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
		if m.row < len(durationGrid)-1 {
			m.row++
		}
	case key.Matches(keyMsg, m.KeyMap.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(keyMsg, m.KeyMap.Right):
		if m.col < len(durationGrid[m.row])-1 {
			m.col++
		}
	case key.Matches(keyMsg, m.KeyMap.Select):
		cell := durationGrid[m.row][m.col]
		if cell.roundTo > 0 {
			return m, cmdOf(DurationRoundedMsg{ID: m.id, Minutes: cell.roundTo})
		}
		return m, cmdOf(DurationAdjustedMsg{ID: m.id, DeltaSeconds: cell.delta})
	}
	return m, nil
}

func (m DurationSelect) View() string {
	var b strings.Builder
	for r, row := range durationGrid {
		for c, cell := range row {
			style := m.Styles.Button
			if m.focused && m.row == r && m.col == c {
				style = m.Styles.CursorButton
			}
			b.WriteString(style.Render(" " + cell.label + " "))
		}
		if r < len(durationGrid)-1 {
			b.WriteByte('\n')
		}
	}
	return m.Styles.Dialog.Render(b.String())
}
