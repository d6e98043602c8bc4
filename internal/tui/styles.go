package tui

import (
	"cbrarecords/internal/models"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("#0E7490") // Teal
	sectionColor = lipgloss.Color("#3B82F6") // Blue
	passColor    = lipgloss.Color("#10B981") // Green
	warningColor = lipgloss.Color("#F59E0B") // Amber
	failColor    = lipgloss.Color("#EF4444") // Red
	mutedColor   = lipgloss.Color("#6B7280") // Gray

	pageStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	noteStyle = lipgloss.NewStyle().Foreground(mutedColor)

	countStyle = noteStyle.MarginBottom(1)

	helpStyle = noteStyle.MarginTop(1)

	// Menu
	menuItemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	menuCursorStyle = menuItemStyle.
			Foreground(lipgloss.Color("#FFF")).
			Background(accentColor).
			Bold(true)

	// Status line under the menu
	okStyle      = lipgloss.NewStyle().Foreground(passColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(failColor).Bold(true)

	// Record card
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)

	sectionStyle = lipgloss.NewStyle().Foreground(sectionColor).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(mutedColor).Width(22)
	presentStyle = lipgloss.NewStyle().Foreground(passColor).Bold(true)
	absentStyle  = lipgloss.NewStyle().Foreground(failColor).Bold(true)

	promotedStyle = lipgloss.NewStyle().Foreground(passColor)
)

// gradeStyle colours a grade: A and B pass well, C to E pass, F fails.
func gradeStyle(g models.Grade) lipgloss.Style {
	switch g {
	case 'A', 'B':
		return presentStyle
	case 'F':
		return absentStyle
	default:
		return lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	}
}

func studentTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(accentColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFF")).
		Background(accentColor).
		Bold(true)
	return s
}
