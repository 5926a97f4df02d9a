// ABOUTME: CLI command for semantic search over knowledge cards
// ABOUTME: Supports an exact content-type filter and table or JSON output
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

var (
	searchLimit int
	searchType  string
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Semantically search the knowledge base",
		Long: `Semantically search stored knowledge cards.

The query is embedded and matched against all cards by cosine
similarity. Results include the raw distance so you can threshold.

Examples:
  deepread search "cognitive biases in decision making"
  deepread search --limit 10 --type quote "attention"
  deepread search --format json "deliberate practice"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum results to return")
	cmd.Flags().StringVar(&searchType, "type", "", "Filter by content type: insight, quote, concept, example")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}

	typeFilter := models.ContentType(searchType)
	if searchType != "" && !typeFilter.Valid() {
		return fmt.Errorf("unknown content type %q", searchType)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	matches, err := store.Search(cmd.Context(), args[0], searchLimit, typeFilter)
	if err != nil {
		return fmt.Errorf("searching knowledge base: %w", err)
	}

	if len(matches) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No knowledge cards found for query: %s\n", args[0])
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DISTANCE\tTYPE\tBOOK\tCONTENT\n")
	fmt.Fprintf(w, "--------\t----\t----\t-------\n")
	for _, match := range matches {
		fmt.Fprintf(w, "%.4f\t%s\t%s\t%s\n",
			match.Distance,
			match.ContentType,
			truncate(match.BookTitle, 24),
			truncate(match.Content, 60))
	}
	_ = w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d result(s)\n", len(matches))
	}

	return nil
}
