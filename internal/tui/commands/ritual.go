// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leafecho/leafecho/internal/tui"
)

// RitualStepCmd fires RitualStepMsg for ritual seq after d.
// A zero duration steps immediately.
func RitualStepCmd(seq int, d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return tui.RitualStepMsg{Seq: seq} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tui.RitualStepMsg{Seq: seq}
	})
}

// CtrlCResetCmd clears the Ctrl+C confirmation after d.
func CtrlCResetCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tui.CtrlCResetMsg{}
	})
}
