package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette of the dashboard. Colors are ANSI
// 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	Accent      lipgloss.Color
	ErrorText   lipgloss.Color
	BorderColor lipgloss.Color
	HelpText    lipgloss.Color

	// Bars of the sales chart.
	SalesBar lipgloss.Color
	UsersBar lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	Accent:      lipgloss.Color("75"),
	ErrorText:   lipgloss.Color("196"),
	BorderColor: lipgloss.Color("240"),
	HelpText:    lipgloss.Color("241"),

	SalesBar: lipgloss.Color("75"),
	UsersBar: lipgloss.Color("141"),
}

// styles are the lipgloss styles derived from a Theme.
type styles struct {
	sidebar     lipgloss.Style
	menuItem    lipgloss.Style
	menuActive  lipgloss.Style
	header      lipgloss.Style
	title       lipgloss.Style
	faint       lipgloss.Style
	accent      lipgloss.Style
	errorText   lipgloss.Style
	card        lipgloss.Style
	panel       lipgloss.Style
	modal       lipgloss.Style
	tableHeader lipgloss.Style
	selectedRow lipgloss.Style
	help        lipgloss.Style
}

func newStyles(theme Theme) styles {
	return styles{
		sidebar: lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(1, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(theme.BorderColor),
		menuItem: lipgloss.NewStyle().Foreground(theme.NormalText).PaddingLeft(1),
		menuActive: lipgloss.NewStyle().
			Foreground(theme.SelectedForeground).
			Background(theme.SelectedBackground).
			Bold(true).
			PaddingLeft(1),
		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.BorderColor).
			PaddingLeft(1),
		title:     lipgloss.NewStyle().Bold(true).Foreground(theme.SelectedForeground),
		faint:     lipgloss.NewStyle().Foreground(theme.FaintText),
		accent:    lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		errorText: lipgloss.NewStyle().Foreground(theme.ErrorText).Bold(true),
		card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderColor).
			Padding(0, 1).
			Width(22),
		panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderColor).
			Padding(0, 1),
		modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(theme.ErrorText).
			Padding(1, 2),
		tableHeader: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		selectedRow: lipgloss.NewStyle().
			Foreground(theme.SelectedForeground).
			Background(theme.SelectedBackground),
		help: lipgloss.NewStyle().Foreground(theme.HelpText).PaddingLeft(1),
	}
}
