package components

import (
	"soundingkit/sndprefs/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders a one-line status message; errors are highlighted.
func StatusBar(width int, message string, isError bool) string {
	if message == "" {
		return ""
	}

	style := styles.SuccessText
	if isError {
		style = styles.ErrorText
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(style.Render(message))
}
