// Package views provides TUI view components for the leafecho application.
package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leafecho/leafecho/internal/tui"
)

// maxCardWidth is the maximum width for a boxed card.
const maxCardWidth = 86

// cardWidth clamps the terminal width to a readable card width.
func cardWidth(width int) int {
	w := width - 4
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 30 {
		w = 30
	}
	return w
}

// card wraps content in the shared box and a footer line of key help.
func card(width int, content, footer string) string {
	var b strings.Builder
	b.WriteString(content)
	if footer != "" {
		b.WriteString("\n")
		b.WriteString(tui.FooterStyle.Render(footer))
	}
	return tui.BoxStyle.Width(cardWidth(width)).Render(b.String())
}

// heading renders a Chinese title with its English subtitle.
func heading(cn, en string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		tui.TitleStyle.Render(cn),
		tui.SubtitleStyle.Render(en),
	)
}

// ctrlCFooter swaps the footer for the exit confirmation prompt.
func ctrlCFooter(pending bool, footer string) string {
	if pending {
		return tui.ErrorStyle.Render("Press Ctrl+C again to exit")
	}
	return footer
}
