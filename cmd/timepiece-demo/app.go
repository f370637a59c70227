package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"timepiece/heatmap"
	"timepiece/internal/config"
	"timepiece/pickers"
	"timepiece/timekit"
)

type tab int

const (
	tabPickers tab = iota
	tabHeatmap
)

type appKeyMap struct {
	Quit       key.Binding
	SwitchTab  key.Binding
	NextWidget key.Binding
	PrevWidget key.Binding
	Help       key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		SwitchTab:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "switch tab")),
		NextWidget: key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "next widget")),
		PrevWidget: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "previous widget")),
		Help:       key.NewBinding(key.WithKeys("ctrl+_"), key.WithHelp("ctrl+/", "help")),
	}
}

func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.NextWidget, k.PrevWidget, k.Quit}
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.SwitchTab, k.NextWidget, k.PrevWidget}, {k.Help, k.Quit}}
}

const widgetCount = 7

// app is the demo's root model: a pickers tab cycling focus through one of
// each picker, and a heatmap tab fed from the configured ICS files.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	keys   appKeyMap
	help   help.Model

	tab   tab
	focus int

	date     pickers.DatePicker
	clock    pickers.TimePicker
	duration pickers.DurationPicker
	instant  pickers.DateTimePicker
	span     pickers.DateRangePicker
	window   pickers.DateTimeRangePicker
	session  pickers.DateTimeDurationPicker

	manager heatmap.Manager

	status string
	width  int
	height int
}

func newApp(cfg *config.Config, logger *log.Logger) (*app, error) {
	mgr, err := heatmap.NewManager(cfg.Year)
	if err != nil {
		return nil, err
	}

	weekStart := cfg.WeekStartDay()
	a := &app{
		cfg:      cfg,
		logger:   logger,
		keys:     defaultAppKeyMap(),
		help:     help.New(),
		date:     pickers.NewDatePicker("date", weekStart),
		clock:    pickers.NewTimePicker("time"),
		duration: pickers.NewDurationPicker("duration"),
		instant:  pickers.NewDateTimePicker("instant", weekStart),
		span:     pickers.NewDateRangePicker("span", weekStart),
		window:   pickers.NewDateTimeRangePicker("window", weekStart),
		session:  pickers.NewDateTimeDurationPicker("session"),
		manager:  mgr,
		status:   "ready",
	}
	a.focusWidget(0)
	return a, nil
}

func (a *app) Init() tea.Cmd {
	return tea.Batch(
		a.date.Init(), a.clock.Init(), a.duration.Init(),
		a.instant.Init(), a.span.Init(), a.window.Init(), a.session.Init(),
	)
}

func (a *app) blurAll() {
	a.date.Blur()
	a.clock.Blur()
	a.duration.Blur()
	a.instant.Blur()
	a.span.Blur()
	a.window.Blur()
	a.session.Blur()
	a.manager.Blur()
}

func (a *app) focusWidget(i int) tea.Cmd {
	a.blurAll()
	a.focus = (i + widgetCount) % widgetCount
	if a.tab == tabHeatmap {
		a.manager.Focus()
		return nil
	}
	switch a.focus {
	case 0:
		return a.date.Focus()
	case 1:
		return a.clock.Focus()
	case 2:
		return a.duration.Focus()
	case 3:
		return a.instant.Focus()
	case 4:
		return a.span.Focus()
	case 5:
		return a.window.Focus()
	default:
		return a.session.Focus()
	}
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.SwitchTab):
			if a.tab == tabPickers {
				a.tab = tabHeatmap
			} else {
				a.tab = tabPickers
			}
			return a, a.focusWidget(a.focus)
		case key.Matches(msg, a.keys.NextWidget):
			if a.tab == tabPickers {
				return a, a.focusWidget(a.focus + 1)
			}
			return a, nil
		case key.Matches(msg, a.keys.PrevWidget):
			if a.tab == tabPickers {
				return a, a.focusWidget(a.focus - 1)
			}
			return a, nil
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
	}

	a.observe(msg)

	// Every widget sees every message; unfocused widgets still consume
	// their own change and selection messages.
	cmds := make([]tea.Cmd, 0, widgetCount+1)
	var cmd tea.Cmd
	a.date, cmd = a.date.Update(msg)
	cmds = append(cmds, cmd)
	a.clock, cmd = a.clock.Update(msg)
	cmds = append(cmds, cmd)
	a.duration, cmd = a.duration.Update(msg)
	cmds = append(cmds, cmd)
	a.instant, cmd = a.instant.Update(msg)
	cmds = append(cmds, cmd)
	a.span, cmd = a.span.Update(msg)
	cmds = append(cmds, cmd)
	a.window, cmd = a.window.Update(msg)
	cmds = append(cmds, cmd)
	a.session, cmd = a.session.Update(msg)
	cmds = append(cmds, cmd)
	a.manager, cmd = a.manager.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// observe turns widget messages into the status line and the log.
func (a *app) observe(msg tea.Msg) {
	set := func(s string) {
		a.status = s
		a.logger.Info(s)
	}
	switch msg := msg.(type) {
	case pickers.DateChangedMsg:
		set(fmt.Sprintf("%s: %s", msg.ID, fmtDate(msg.Date)))
	case pickers.TimeChangedMsg:
		if msg.Time == nil {
			set(fmt.Sprintf("%s: cleared", msg.ID))
		} else {
			set(fmt.Sprintf("%s: %s", msg.ID, msg.Time))
		}
	case pickers.DurationChangedMsg:
		if msg.Duration == nil {
			set(fmt.Sprintf("%s: cleared", msg.ID))
		} else {
			set(fmt.Sprintf("%s: %s", msg.ID, msg.Duration))
		}
	case pickers.DateTimeChangedMsg:
		if msg.DateTime == nil {
			set(fmt.Sprintf("%s: cleared", msg.ID))
		} else {
			set(fmt.Sprintf("%s: %s", msg.ID, msg.DateTime))
		}
	case pickers.DateRangeChangedMsg:
		set(fmt.Sprintf("%s: %s → %s", msg.ID, fmtDate(msg.Start), fmtDate(msg.End)))
	case pickers.DateTimeRangeChangedMsg:
		start, end := "·", "·"
		if msg.Start != nil {
			start = msg.Start.String()
		}
		if msg.End != nil {
			end = msg.End.String()
		}
		set(fmt.Sprintf("%s: %s → %s", msg.ID, start, end))
	case heatmap.DaySelectedMsg:
		set(fmt.Sprintf("heatmap: %s, %.1f hours", msg.Date, msg.Value))
	case heatmap.WeekSelectedMsg:
		set(fmt.Sprintf("heatmap: week %d of %d, %.1f hours", msg.Week, msg.Year, msg.Total))
	case heatmap.MonthSelectedMsg:
		set(fmt.Sprintf("heatmap: %s %d, %.1f hours", msg.Month, msg.Year, msg.Total))
	case heatmap.YearChangedMsg:
		set(fmt.Sprintf("heatmap: year %d", msg.Year))
	}
}

func fmtDate(d *timekit.Date) string {
	if d == nil {
		return "·"
	}
	return d.String()
}

var (
	tabActive   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1)
	tabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
)

func (a *app) View() string {
	tabs := lipgloss.JoinHorizontal(lipgloss.Center,
		a.tabStyle(tabPickers).Render("Pickers"),
		a.tabStyle(tabHeatmap).Render("Heatmap"),
	)

	var body string
	if a.tab == tabPickers {
		body = a.pickersView()
	} else {
		body = a.manager.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		"",
		body,
		"",
		statusStyle.Render(a.status),
		a.help.View(a.keys),
	)
}

func (a *app) tabStyle(t tab) lipgloss.Style {
	if a.tab == t {
		return tabActive
	}
	return tabInactive
}

func (a *app) pickersView() string {
	row := func(label, view string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), view)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		row("date", a.date.View()),
		row("time", a.clock.View()),
		row("duration", a.duration.View()),
		row("instant", a.instant.View()),
		row("span", a.span.View()),
		row("window", a.window.View()),
		row("session", a.session.View()),
	)
}
