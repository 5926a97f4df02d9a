// ABOUTME: CLI command to ingest one book's analysis into the knowledge base
// ABOUTME: Reads the analysis JSON from a file or stdin
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

var (
	ingestTitle  string
	ingestAuthor string
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [analysis.json]",
		Short: "Add a book's analysis to the knowledge base",
		Long: `Add a book's analysis result to the knowledge base.

The analysis is a JSON object with optional "insights", "quotes", and
"mind_map" fields. One knowledge card is created per insight, quote,
and mind-map concept, embedded and stored one at a time.

Examples:
  deepread ingest --title "Thinking, Fast and Slow" --author "Daniel Kahneman" analysis.json
  cat analysis.json | deepread ingest --title "Deep Work"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&ingestTitle, "title", "", "Book title (required)")
	cmd.Flags().StringVar(&ingestAuthor, "author", "", "Book author")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error

	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading analysis file: %w", err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	var analysis models.BookAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return fmt.Errorf("parsing analysis JSON: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cardIDs, err := store.AddBookKnowledge(cmd.Context(), ingestTitle, ingestAuthor, &analysis)
	if err != nil {
		// Committed cards stay committed; report the partial count
		return fmt.Errorf("ingestion stopped after %d card(s): %w", len(cardIDs), err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d knowledge card(s) for %q\n", len(cardIDs), ingestTitle)
		if verbose {
			for _, id := range cardIDs {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", id)
			}
		}
	}

	return nil
}
