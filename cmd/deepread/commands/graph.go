// ABOUTME: CLI command emitting the knowledge graph view as JSON
// ABOUTME: Card and book nodes with card -> book edges, for visualization tools
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewGraphCmd creates the graph command
func NewGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the knowledge graph as JSON",
		Long: `Print the knowledge graph view of the store as JSON.

Each card is a node linked to its book node, suitable for feeding
into a graph visualization tool.`,
		Args: cobra.NoArgs,
		RunE: runGraph,
	}

	return cmd
}

func runGraph(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	graph, err := store.GraphData()
	if err != nil {
		return fmt.Errorf("building knowledge graph: %w", err)
	}

	jsonData, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)

	return nil
}
