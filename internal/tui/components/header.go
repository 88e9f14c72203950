// Package components provides render-only building blocks (not tea.Model)
// that the sndprefs screens compose into views.
package components

import (
	"strings"

	"soundingkit/sndprefs/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar with a breadcrumb on the left
// and an optional detail (e.g. the store backend) on the right.
func Header(width int, breadcrumb string, detail string) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(styles.Blue).Render("sndprefs")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	right := ""
	if detail != "" {
		right = styles.Subtitle.Render(detail)
	}

	innerWidth := width - 4
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(left + strings.Repeat(" ", gap) + right)
}
