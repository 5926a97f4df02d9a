// ABOUTME: MCP tool handler implementations for the DeepRead server
// ABOUTME: Thin adapters translating tool calls onto the knowledge store
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/liyoubang97-hub/deepread-app/internal/knowledge"
	"github.com/liyoubang97-hub/deepread-app/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store *knowledge.KnowledgeStore
}

// IngestBook handles the ingest_book tool
func (h *Handlers) IngestBook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title argument is required and must be a string"), nil
	}

	author := request.GetString("author", "")

	analysis, err := decodeAnalysis(request.GetArguments()["analysis"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid analysis argument: %v", err)), nil
	}

	cardIDs, err := h.store.AddBookKnowledge(ctx, title, author, analysis)
	if err != nil {
		// Partial ingestion is not rolled back; report what was committed
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed after %d cards: %v", len(cardIDs), err)), nil
	}

	response := map[string]interface{}{
		"cards_added": len(cardIDs),
		"card_ids":    cardIDs,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchKnowledge handles the search_knowledge tool
func (h *Handlers) SearchKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	maxResults := request.GetInt("max_results", 5)
	contentType := models.ContentType(request.GetString("content_type", ""))

	matches, err := h.store.Search(ctx, query, maxResults, contentType)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"matches": matches,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// FindRelatedBooks handles the find_related_books tool
func (h *Handlers) FindRelatedBooks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title argument is required and must be a string"), nil
	}

	maxResults := request.GetInt("max_results", 3)

	related, err := h.store.FindRelatedBooks(ctx, title, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("relationship lookup failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"related_books": related,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ExportMarkdown handles the export_markdown tool
func (h *Handlers) ExportMarkdown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path argument is required and must be a string"), nil
	}

	written, err := h.store.ExportMarkdown(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"path": written,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// decodeAnalysis converts the raw analysis argument into a BookAnalysis.
// Absent sections stay empty; only a structurally invalid object errors.
func decodeAnalysis(raw interface{}) (*models.BookAnalysis, error) {
	if raw == nil {
		return &models.BookAnalysis{}, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("not a JSON object: %w", err)
	}

	var analysis models.BookAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("does not match the analysis schema: %w", err)
	}
	return &analysis, nil
}
