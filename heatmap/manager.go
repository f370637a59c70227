package heatmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"timepiece/timekit"
)

// ManagerKeyMap holds the year navigation bindings.
type ManagerKeyMap struct {
	PrevYear  key.Binding
	NextYear  key.Binding
	PrevYears key.Binding
	NextYears key.Binding
	Today     key.Binding
	YearInput key.Binding
	Apply     key.Binding
}

// DefaultManagerKeyMap returns the stock bindings.
func DefaultManagerKeyMap() ManagerKeyMap {
	return ManagerKeyMap{
		PrevYear:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous year")),
		NextYear:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next year")),
		PrevYears: key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "back 5 years")),
		NextYears: key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "forward 5 years")),
		Today:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "current year")),
		YearInput: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "year entry")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go to year")),
	}
}

// Manager wraps a heatmap with year navigation: single and five-year
// steps, a jump to the current year and a typed year entry. Every year
// move is announced with YearChangedMsg.
type Manager struct {
	KeyMap ManagerKeyMap
	Styles Styles

	heatmap   Model
	yearInput textinput.Model
	onInput   bool
	focused   bool
}

// NewManager builds a manager showing the given year.
func NewManager(year int) (Manager, error) {
	hm, err := New(year)
	if err != nil {
		return Manager{}, err
	}
	ti := textinput.New()
	ti.Placeholder = "year"
	ti.CharLimit = 4
	ti.Width = 5
	ti.Prompt = ""
	return Manager{
		KeyMap:    DefaultManagerKeyMap(),
		Styles:    hm.Styles,
		heatmap:   hm,
		yearInput: ti,
	}, nil
}

func (m Manager) Year() int       { return m.heatmap.Year() }
func (m Manager) Heatmap() Model  { return m.heatmap }
func (m Manager) Focused() bool   { return m.focused }
func (m Manager) Init() tea.Cmd   { return nil }

func (m *Manager) Focus() {
	m.focused = true
	if !m.onInput {
		m.heatmap.Focus()
	}
}

func (m *Manager) Blur() {
	m.focused = false
	m.heatmap.Blur()
	m.yearInput.Blur()
}

// SetValues replaces the per-day values of the wrapped heatmap.
func (m *Manager) SetValues(values map[timekit.Date]float64) {
	m.heatmap.SetValues(values)
}

// Add accumulates a per-day value on the wrapped heatmap.
func (m *Manager) Add(d timekit.Date, v float64) { m.heatmap.Add(d, v) }

func (m *Manager) shiftYear(delta int) tea.Cmd {
	year := m.heatmap.Year() + delta
	if year < timekit.MinYear {
		year = timekit.MinYear
	}
	if year > timekit.MaxYear {
		year = timekit.MaxYear
	}
	return m.gotoYear(year)
}

func (m *Manager) gotoYear(year int) tea.Cmd {
	if year == m.heatmap.Year() {
		return nil
	}
	if err := m.heatmap.SetYear(year); err != nil {
		return nil
	}
	return func() tea.Msg { return YearChangedMsg{Year: year} }
}

func (m *Manager) toggleInput() tea.Cmd {
	m.onInput = !m.onInput
	if m.onInput {
		m.heatmap.Blur()
		m.yearInput.SetValue("")
		return m.yearInput.Focus()
	}
	m.yearInput.Blur()
	m.heatmap.Focus()
	return nil
}

func (m Manager) Update(msg tea.Msg) (Manager, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.PrevYear):
		return m, m.shiftYear(-1)
	case key.Matches(keyMsg, m.KeyMap.NextYear):
		return m, m.shiftYear(1)
	case key.Matches(keyMsg, m.KeyMap.PrevYears):
		return m, m.shiftYear(-5)
	case key.Matches(keyMsg, m.KeyMap.NextYears):
		return m, m.shiftYear(5)
	case key.Matches(keyMsg, m.KeyMap.Today):
		cmd := m.gotoYear(timekit.Today().Year)
		m.heatmap.MoveTo(timekit.Today())
		return m, cmd
	case key.Matches(keyMsg, m.KeyMap.YearInput):
		return m, m.toggleInput()
	case key.Matches(keyMsg, m.KeyMap.Apply) && m.onInput:
		year, err := strconv.Atoi(strings.TrimSpace(m.yearInput.Value()))
		if err != nil || year < timekit.MinYear || year > timekit.MaxYear {
			return m, nil
		}
		cmd := m.gotoYear(year)
		return m, tea.Batch(cmd, m.toggleInput())
	}

	var cmd tea.Cmd
	if m.onInput {
		m.yearInput, cmd = m.yearInput.Update(msg)
	} else {
		m.heatmap, cmd = m.heatmap.Update(msg)
	}
	return m, cmd
}

func (m Manager) View() string {
	title := fmt.Sprintf("«  ‹  %d  ›  »", m.heatmap.Year())
	if m.onInput {
		title = fmt.Sprintf("«  ‹  %s  ›  »", m.yearInput.View())
	}
	return m.Styles.Label.Render(title) + "\n" + m.heatmap.View()
}
