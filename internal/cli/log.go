// log.go implements the "leafecho log" command showing recent events.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/leafecho/leafecho/internal/log"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent session events",
	Long: `Print the most recent entries of the event log.
The log records navigation and counts only, never answer text.`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "Number of events to show (0 for all)")
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, err := logDir(cfg)
	if err != nil {
		return err
	}

	events, err := log.ReadFile(log.Path(dir))
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("no events found; start a session with: leafecho")
	}
	printEvents(cmd.OutOrStdout(), log.Tail(events, logLimit))
	return nil
}

func printEvents(w io.Writer, events []log.LogEvent) {
	for _, e := range events {
		run := e.Run
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Fprintf(w, "%s  %-8s  %-20s", e.Time.Local().Format("2006-01-02 15:04:05"), run, e.Event)
		if e.From != "" || e.View != "" {
			fmt.Fprintf(w, "  %s→%s", e.From, e.View)
		}
		if e.Mode != "" {
			fmt.Fprintf(w, "  mode=%s", e.Mode)
		}
		if e.Topic != "" {
			fmt.Fprintf(w, "  topic=%s", e.Topic)
		}
		if e.Count != 0 {
			fmt.Fprintf(w, "  count=%d", e.Count)
		}
		if e.Reason != "" {
			fmt.Fprintf(w, "  (%s)", e.Reason)
		}
		if e.Error != "" {
			fmt.Fprintf(w, "  error=%s", e.Error)
		}
		fmt.Fprintln(w)
	}
}
