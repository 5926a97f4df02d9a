// ABOUTME: CLI command to export the knowledge base as Markdown
// ABOUTME: Writes atomically so a failed export never corrupts the target
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export the knowledge base to a Markdown file",
		Long: `Export every stored knowledge card to one Markdown document.

Books appear in the order they were first ingested; within each book,
insights come first, then quotes, then concepts. The file is written
to a temporary location and moved into place atomically.

Examples:
  deepread export knowledge.md
  deepread export ~/notes/books.md`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	path, err := store.ExportMarkdown(args[0])
	if err != nil {
		return fmt.Errorf("exporting knowledge base: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Knowledge base exported to %s\n", path)
	}

	return nil
}
