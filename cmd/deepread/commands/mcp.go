// ABOUTME: MCP command starts a Model Context Protocol server over stdio
// ABOUTME: Lets LLM agents ingest, search, relate, and export the knowledge base
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/liyoubang97-hub/deepread-app/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

Exposes the knowledge base to LLM agents as tools: ingest_book,
search_knowledge, find_related_books, and export_markdown.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  deepread mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "deepread": {
  #       "command": "deepread",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	server := mcpserver.NewMCPServer(
		"DeepRead Knowledge Base",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, store)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("DeepRead MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down...")
		}
		return nil
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	}
}
