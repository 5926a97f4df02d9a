// ABOUTME: Tests for the knowledge graph view
package knowledge

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

func TestGraphData(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())
	if _, err := ks.AddBookKnowledge(context.Background(), "T", "A", sampleAnalysis()); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}

	graph, err := ks.GraphData()
	if err != nil {
		t.Fatalf("GraphData() error = %v", err)
	}

	// 4 card nodes plus 1 book node
	if len(graph.Nodes) != 5 {
		t.Errorf("GraphData() has %d nodes, want 5", len(graph.Nodes))
	}
	if len(graph.Edges) != 4 {
		t.Errorf("GraphData() has %d edges, want 4", len(graph.Edges))
	}

	bookNodes := 0
	for _, node := range graph.Nodes {
		if node.Type == "book" {
			bookNodes++
			if node.ID != "book_T" {
				t.Errorf("book node id = %q, want book_T", node.ID)
			}
		}
	}
	if bookNodes != 1 {
		t.Errorf("GraphData() has %d book nodes, want 1", bookNodes)
	}

	for _, edge := range graph.Edges {
		if edge.To != "book_T" {
			t.Errorf("edge %s -> %s, want all edges into book_T", edge.From, edge.To)
		}
	}
}

func TestGraphDataEmptyStore(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())

	graph, err := ks.GraphData()
	if err != nil {
		t.Fatalf("GraphData() error = %v", err)
	}
	if graph.Nodes == nil || graph.Edges == nil {
		t.Error("GraphData() returned nil slices, want empty")
	}
	if len(graph.Nodes) != 0 || len(graph.Edges) != 0 {
		t.Errorf("GraphData() on empty store has %d nodes and %d edges", len(graph.Nodes), len(graph.Edges))
	}
}

func TestGraphDataLabelTruncation(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())

	long := strings.Repeat("deliberate practice ", 5)
	analysis := &models.BookAnalysis{Insights: []string{long}}
	if _, err := ks.AddBookKnowledge(context.Background(), "T", "", analysis); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}

	graph, err := ks.GraphData()
	if err != nil {
		t.Fatalf("GraphData() error = %v", err)
	}

	for _, node := range graph.Nodes {
		if node.Type != "book" {
			if !strings.HasSuffix(node.Label, "...") {
				t.Errorf("long label %q not truncated", node.Label)
			}
			if got := utf8.RuneCountInString(node.Label); got > 33 {
				t.Errorf("label has %d runes, want at most 33", got)
			}
		}
	}
}
