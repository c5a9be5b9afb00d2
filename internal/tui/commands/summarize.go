package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leafecho/leafecho/internal/summarize"
	"github.com/leafecho/leafecho/internal/tui"
)

// SummarizeCmd asks s to summarize pairs, bounded by timeout.
// Returns SummaryResultMsg tagged with token. Cancelling ctx abandons the
// request; the result is still delivered so the caller can discard it.
func SummarizeCmd(ctx context.Context, s summarize.Summarizer, pairs []summarize.Pair, token uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		res, err := s.Summarize(ctx, pairs)
		return tui.SummaryResultMsg{Token: token, Result: res, Err: err}
	}
}
