// ABOUTME: Knowledge graph view over the card collection
// ABOUTME: One node per card plus one per book, edges card -> book
package knowledge

import (
	"fmt"

	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

// graphLabelLimit caps card node labels for display
const graphLabelLimit = 30

// GraphData builds a graph view of the store for visualization consumers:
// card nodes labeled with truncated content, book nodes, and one edge from
// each card to its book. Read-only.
func (ks *KnowledgeStore) GraphData() (*models.KnowledgeGraph, error) {
	ks.mu.RLock()
	cards, err := ks.cards.All()
	closed := ks.closed
	ks.mu.RUnlock()

	if closed {
		return nil, ErrStoreClosed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	graph := &models.KnowledgeGraph{
		Nodes: []models.GraphNode{},
		Edges: []models.GraphEdge{},
	}

	seenBooks := make(map[string]bool)
	for _, card := range cards {
		graph.Nodes = append(graph.Nodes, models.GraphNode{
			ID:    card.ID,
			Label: truncateLabel(card.Content, graphLabelLimit),
			Type:  string(card.ContentType),
			Book:  card.BookTitle,
		})

		bookNode := "book_" + card.BookTitle
		if !seenBooks[card.BookTitle] {
			seenBooks[card.BookTitle] = true
			graph.Nodes = append(graph.Nodes, models.GraphNode{
				ID:    bookNode,
				Label: card.BookTitle,
				Type:  "book",
				Book:  card.BookTitle,
			})
		}

		graph.Edges = append(graph.Edges, models.GraphEdge{
			From: card.ID,
			To:   bookNode,
		})
	}

	return graph, nil
}

// truncateLabel shortens s to maxRunes, appending "..." when cut
func truncateLabel(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
