// topics.go implements the "leafecho topics" command listing the catalog.
package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/leafecho/leafecho/internal/catalog"
)

var topicsJSON bool

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the reflection topics",
	Long: `List the twelve bundled topics with their questions.
Use --json for machine-readable output.`,
	RunE: runTopics,
}

func init() {
	topicsCmd.Flags().BoolVar(&topicsJSON, "json", false, "Print topics as JSON")
}

func runTopics(cmd *cobra.Command, args []string) error {
	return printTopics(cmd.OutOrStdout(), catalog.Default(), topicsJSON)
}

func printTopics(w io.Writer, cat *catalog.Catalog, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cat.Topics()); err != nil {
			return fmt.Errorf("encoding topics: %w", err)
		}
		return nil
	}

	for _, t := range cat.Topics() {
		fmt.Fprintf(w, "%s  %s  %s\n", t.Number, t.TitleCn, t.TitleEn)
		for _, q := range t.Questions {
			fmt.Fprintf(w, "      %2d. %s\n", q.ID, q.Text)
		}
	}
	return nil
}
