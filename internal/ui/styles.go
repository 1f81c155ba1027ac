package ui

import "github.com/charmbracelet/lipgloss"

// Styles is the lipgloss palette derived from the active theme, the CLI
// analog of toggling a class on the document root.
type Styles struct {
	Title    lipgloss.Style
	URL      lipgloss.Style
	Tag      lipgloss.Style
	Muted    lipgloss.Style
	Pinned   lipgloss.Style
	Archived lipgloss.Style
	Header   lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds the palette for a theme.
func NewStyles(theme Theme) Styles {
	var (
		accent = lipgloss.Color("33")
		subtle = lipgloss.Color("245")
		text   = lipgloss.Color("235")
	)
	if theme == ThemeDark {
		accent = lipgloss.Color("39")
		subtle = lipgloss.Color("243")
		text = lipgloss.Color("252")
	}

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(text),
		URL:      lipgloss.NewStyle().Foreground(accent).Underline(true),
		Tag:      lipgloss.NewStyle().Foreground(accent),
		Muted:    lipgloss.NewStyle().Foreground(subtle),
		Pinned:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Archived: lipgloss.NewStyle().Foreground(subtle).Strikethrough(true),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(subtle),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
