// draw.go implements the "leafecho draw" command, a non-interactive draw.
package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/leafecho/leafecho/internal/catalog"
	"github.com/leafecho/leafecho/internal/session"
)

var (
	drawMode  string
	drawTopic string
	drawJSON  bool
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw questions without the interactive ritual",
	Long: `Draw questions the same way the wind chime does.
Quick mode picks one random topic and three of its questions; deep mode
lists every question of --topic in order.`,
	RunE: runDraw,
}

func init() {
	drawCmd.Flags().StringVar(&drawMode, "mode", string(session.ModeQuick), "Draw mode: quick or deep")
	drawCmd.Flags().StringVar(&drawTopic, "topic", "", "Topic id for deep mode (see 'leafecho topics')")
	drawCmd.Flags().BoolVar(&drawJSON, "json", false, "Print the draw as JSON")
}

func runDraw(cmd *cobra.Command, args []string) error {
	m := session.NewMachine(catalog.Default())
	items, err := draw(m, session.Mode(drawMode), drawTopic)
	if err != nil {
		return err
	}
	return printDraw(cmd.OutOrStdout(), items, drawJSON)
}

func draw(m *session.Machine, mode session.Mode, topicID string) ([]session.SessionItem, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown mode %q (want quick or deep)", mode)
	}
	if mode == session.ModeDeep {
		if topicID == "" {
			return nil, fmt.Errorf("deep mode needs --topic")
		}
		if _, ok := m.Catalog().Topic(topicID); !ok {
			return nil, fmt.Errorf("unknown topic %q", topicID)
		}
	}
	return m.Draw(mode, topicID), nil
}

type drawnQuestion struct {
	Topic    string `json:"topic"`
	ID       int    `json:"id"`
	Question string `json:"question"`
}

func printDraw(w io.Writer, items []session.SessionItem, asJSON bool) error {
	if asJSON {
		out := make([]drawnQuestion, len(items))
		for i, it := range items {
			out[i] = drawnQuestion{Topic: it.Topic.TitleCn, ID: it.Question.ID, Question: it.Question.Text}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "No questions drawn.")
		return nil
	}
	fmt.Fprintf(w, "【%s】 %s\n\n", items[0].Topic.TitleCn, items[0].Topic.TitleEn)
	for i, it := range items {
		fmt.Fprintf(w, "%d. %s\n", i+1, it.Question.Text)
	}
	return nil
}
