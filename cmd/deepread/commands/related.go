// ABOUTME: CLI command for heuristic cross-book relationship discovery
// ABOUTME: Groups nearest-neighbor matches from other books by shared count
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var relatedLimit int

// NewRelatedCmd creates the related command
func NewRelatedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "related <book title>",
		Short: "Find books related to a given book",
		Long: `Find books related to the given title.

Relatedness is inferred from shared nearest-neighbor knowledge cards
inside a bounded search window; treat the results as a heuristic
signal, not an exhaustive graph.

Examples:
  deepread related "Thinking, Fast and Slow"
  deepread related --limit 5 "Deep Work"`,
		Args: cobra.ExactArgs(1),
		RunE: runRelated,
	}

	cmd.Flags().IntVar(&relatedLimit, "limit", 3, "Maximum related books to return")

	return cmd
}

func runRelated(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(relatedLimit, "limit"); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	related, err := store.FindRelatedBooks(cmd.Context(), args[0], relatedLimit)
	if err != nil {
		return fmt.Errorf("finding related books: %w", err)
	}

	if len(related) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No related books found for: %s\n", args[0])
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(related, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SHARED\tTITLE\tAUTHOR\tSAMPLE CONCEPTS\n")
	fmt.Fprintf(w, "------\t-----\t------\t---------------\n")
	for _, book := range related {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			book.SharedConceptCount,
			truncate(book.Title, 24),
			truncate(book.Author, 20),
			truncate(strings.Join(book.SampleConcepts, "; "), 50))
	}
	_ = w.Flush()

	return nil
}
