package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles for one terminal background profile.
type Styles struct {
	Title     lipgloss.Style
	Street    lipgloss.Style
	Prompt    lipgloss.Style
	Pot       lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
}

// DefaultStyles picks a palette for the detected terminal background.
func DefaultStyles() Styles {
	if termenv.HasDarkBackground() {
		return darkStyles()
	}
	return lightStyles()
}

func darkStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Street: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
	}
}

func lightStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5A32C8")).
			Bold(true),
		Street: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E7A4F")).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8A6D00")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7A5C00")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C0392B")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8A8A8A")),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C0392B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1C1C1C")).
			Bold(true),
	}
}
