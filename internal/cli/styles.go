// Package cli renders jarwise reports for the terminal using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	amber   = lipgloss.Color("#F4A261")
	teal    = lipgloss.Color("#2A9D8F")
	saffron = lipgloss.Color("#E9C46A")
	coral   = lipgloss.Color("#E76F51")
	sky     = lipgloss.Color("#8ECAE6")
	slate   = lipgloss.Color("#666666")
	border  = lipgloss.Color("#333333")
)

// Text styles shared by the renderers and commands.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(amber).MarginBottom(1)
	SuccessStyle = lipgloss.NewStyle().Foreground(teal)
	WarningStyle = lipgloss.NewStyle().Foreground(saffron)
	ErrorStyle   = lipgloss.NewStyle().Foreground(coral)
	InfoStyle    = lipgloss.NewStyle().Foreground(sky)
	SubtleStyle  = lipgloss.NewStyle().Foreground(slate)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	// TableHeaderStyle underlines a table's header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(border)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	JarIcon     = "🫙"
	ChartIcon   = "📊"
	CoachIcon   = "💬"
)

// FormatSuccess prefixes message with a check mark.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatWarning prefixes message with a warning sign.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo prefixes message with an info sign.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle renders a section heading.
func FormatTitle(title string) string {
	return TitleStyle.Render(JarIcon + " " + title)
}

// RenderBox draws content under a heading inside a rounded border.
func RenderBox(title, content string) string {
	heading := TitleStyle.UnsetMargins().Render(title)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, content))
}
