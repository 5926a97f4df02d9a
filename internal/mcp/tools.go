// ABOUTME: MCP tool definitions and registration for the DeepRead server
// ABOUTME: Exposes ingestion, search, relationship discovery, and export
package mcp

import (
	"github.com/liyoubang97-hub/deepread-app/internal/knowledge"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *knowledge.KnowledgeStore) *Handlers {
	handlers := &Handlers{store: store}

	// 1. ingest_book - Add one book's analysis to the knowledge base
	server.AddTool(mcp.Tool{
		Name:        "ingest_book",
		Description: "Add a book's analysis result (insights, quotes, mind map concepts) to the personal knowledge base as embedded knowledge cards.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Book title",
				},
				"author": map[string]interface{}{
					"type":        "string",
					"description": "Book author",
				},
				"analysis": map[string]interface{}{
					"type":        "object",
					"description": "Analysis result with optional insights, quotes, and mind_map.branches fields",
				},
			},
			Required: []string{"title", "analysis"},
		},
	}, handlers.IngestBook)

	// 2. search_knowledge - Semantic search over stored cards
	server.AddTool(mcp.Tool{
		Name:        "search_knowledge",
		Description: "Semantic search over all stored knowledge cards. Returns ranked matches with raw cosine distances.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language search query",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 5)",
					"default":     5,
				},
				"content_type": map[string]interface{}{
					"type":        "string",
					"description": "Optional filter: insight, quote, concept, or example",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchKnowledge)

	// 3. find_related_books - Heuristic cross-book relationship discovery
	server.AddTool(mcp.Tool{
		Name:        "find_related_books",
		Description: "Find books related to the given title via shared nearest-neighbor knowledge cards. Heuristic and bounded by the search window.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Book title to find relations for",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of related books (default: 3)",
					"default":     3,
				},
			},
			Required: []string{"title"},
		},
	}, handlers.FindRelatedBooks)

	// 4. export_markdown - Deterministic Markdown export
	server.AddTool(mcp.Tool{
		Name:        "export_markdown",
		Description: "Export the entire knowledge base to a Markdown document grouped by book.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Destination file path",
				},
			},
			Required: []string{"path"},
		},
	}, handlers.ExportMarkdown)

	return handlers
}
