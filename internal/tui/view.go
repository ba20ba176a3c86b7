package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ModelView renders the confirmation model as a string.
func ModelView(m model) string {
	if m.done {
		if m.confirmed {
			return "Removing block.\n"
		}
		return "Leaving file unchanged.\n"
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	header := fmt.Sprintf("%s %s\n%s %q, lines %d-%d",
		headerStyle.Render("File:"), m.block.Path,
		headerStyle.Render("Remove second"), m.block.Marker, m.block.StartLine, m.block.EndLine,
	)
	body := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF0000")).
		Render(m.viewport.View())

	confirm := m.keys.Confirm.Help()
	decline := m.keys.Decline.Help()
	help := helpStyle.Render(fmt.Sprintf("%s: %s • %s: %s • ↑/↓: scroll", confirm.Key, confirm.Desc, decline.Key, decline.Desc))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}
