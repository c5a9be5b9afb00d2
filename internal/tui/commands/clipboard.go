package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/internal/share"
	"github.com/leafecho/leafecho/internal/tui"
)

// CopyCmd formats answer and writes it to the clipboard.
// Returns CopyResultMsg with the text written or the error.
func CopyCmd(c *share.Copier, answer session.UserAnswer) tea.Cmd {
	return func() tea.Msg {
		text, err := c.Copy(answer)
		return tui.CopyResultMsg{Text: text, Err: err}
	}
}
