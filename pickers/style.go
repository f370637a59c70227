package pickers

import "github.com/charmbracelet/lipgloss"

// Styles carries every lipgloss style used by the picker widgets. Override
// individual fields after DefaultStyles to theme a widget.
type Styles struct {
	// Input styles.
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	InputInvalid lipgloss.Style
	Placeholder  lipgloss.Style
	Label        lipgloss.Style

	// Dialog frame around expanded selection panels.
	Dialog lipgloss.Style

	// Calendar / grid cells.
	Header    lipgloss.Style
	Weekday   lipgloss.Style
	Day       lipgloss.Style
	OtherDay  lipgloss.Style
	StartDay  lipgloss.Style
	EndDay    lipgloss.Style
	RangeDay  lipgloss.Style
	CursorDay lipgloss.Style
	TodayDay  lipgloss.Style

	// Buttons and separators.
	Button       lipgloss.Style
	CursorButton lipgloss.Style
	Lock         lipgloss.Style
	Separator    lipgloss.Style
}

// DefaultStyles returns the stock picker theme.
func DefaultStyles() Styles {
	return Styles{
		Input:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		InputFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		InputInvalid: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),

		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Weekday:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Day:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OtherDay:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StartDay:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Italic(true),
		EndDay:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Italic(true),
		RangeDay:  lipgloss.NewStyle().Background(lipgloss.Color("236")),
		CursorDay: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Reverse(true).Bold(true),
		TodayDay:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Underline(true),

		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CursorButton: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Reverse(true),
		Lock:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
