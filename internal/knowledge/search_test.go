// ABOUTME: Tests for semantic search over the knowledge store
// ABOUTME: Covers ranking, filtering, boundaries, and determinism
package knowledge

import (
	"context"
	"errors"
	"testing"

	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

func TestSearchFindsClosestCard(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())
	if _, err := ks.AddBookKnowledge(context.Background(), "T", "", sampleAnalysis()); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}

	matches, err := ks.Search(context.Background(), "I1", 1, "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Search() returned %d matches, want 1", len(matches))
	}
	if matches[0].Content != "I1" {
		t.Errorf("Search(I1) top match = %q, want %q", matches[0].Content, "I1")
	}
	if matches[0].ContentType != models.ContentTypeInsight {
		t.Errorf("top match type = %q, want insight", matches[0].ContentType)
	}
	if matches[0].Distance < 0 || matches[0].Distance > 1 {
		t.Errorf("top match distance = %v, want within [0, 1]", matches[0].Distance)
	}
}

func TestSearchSelfRetrievability(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())
	if _, err := ks.AddBookKnowledge(context.Background(), "T", "", sampleAnalysis()); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}

	cards, err := ks.cards.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	for _, card := range cards {
		matches, err := ks.Search(context.Background(), card.Content, len(cards), "")
		if err != nil {
			t.Fatalf("Search(%q) error = %v", card.Content, err)
		}
		found := false
		for _, m := range matches {
			if m.ID == card.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Search(%q) did not retrieve card %s", card.Content, card.ID)
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())
	if _, err := ks.AddBookKnowledge(context.Background(), "T", "", sampleAnalysis()); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}

	for _, query := range []string{"", "   ", "\t\n"} {
		matches, err := ks.Search(context.Background(), query, 5, "")
		if err != nil {
			t.Errorf("Search(%q) error = %v", query, err)
		}
		if len(matches) != 0 {
			t.Errorf("Search(%q) returned %d matches, want 0", query, len(matches))
		}
	}
}

func TestSearchBounds(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())
	if _, err := ks.AddBookKnowledge(context.Background(), "T", "", sampleAnalysis()); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}

	matches, err := ks.Search(context.Background(), "I1", 0, "")
	if err != nil {
		t.Fatalf("Search(topK=0) error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Search(topK=0) returned %d matches, want 0", len(matches))
	}

	matches, err = ks.Search(context.Background(), "I1", 100, "")
	if err != nil {
		t.Fatalf("Search(topK=100) error = %v", err)
	}
	if len(matches) != 4 {
		t.Errorf("Search(topK=100) returned %d matches, want all 4", len(matches))
	}
}

func TestSearchEmptyStore(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())

	matches, err := ks.Search(context.Background(), "anything", 5, "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Search() on empty store returned %d matches, want 0", len(matches))
	}
}

func TestSearchTypeFilter(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())
	if _, err := ks.AddBookKnowledge(context.Background(), "T", "", sampleAnalysis()); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}

	matches, err := ks.Search(context.Background(), "Q1", 10, models.ContentTypeQuote)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("filtered Search() returned %d matches, want 1", len(matches))
	}
	if matches[0].ContentType != models.ContentTypeQuote {
		t.Errorf("filtered match type = %q, want quote", matches[0].ContentType)
	}

	// The filter narrows the candidate pool before the top-k cut, so a
	// low-ranked quote is still reachable when insights score better
	matches, err = ks.Search(context.Background(), "I1", 1, models.ContentTypeQuote)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 || matches[0].ContentType != models.ContentTypeQuote {
		t.Errorf("filtered Search(I1) = %+v, want the single quote card", matches)
	}

	matches, err = ks.Search(context.Background(), "I1", 10, models.ContentTypeExample)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Search() with absent type returned %d matches, want 0", len(matches))
	}
}

func TestSearchDeterminism(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())
	if _, err := ks.AddBookKnowledge(context.Background(), "T1", "", sampleAnalysis()); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}
	if _, err := ks.AddBookKnowledge(context.Background(), "T2", "", sampleAnalysis()); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}

	first, err := ks.Search(context.Background(), "I1", 8, "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ks.Search(context.Background(), "I1", 8, "")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d returned %d matches, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j].ID != first[j].ID {
				t.Errorf("run %d position %d = %s, want %s", i, j, again[j].ID, first[j].ID)
			}
		}
	}
}

func TestSearchReturnsCopies(t *testing.T) {
	ks := newTestStore(t, newFakeEmbedder())
	if _, err := ks.AddBookKnowledge(context.Background(), "T", "", sampleAnalysis()); err != nil {
		t.Fatalf("AddBookKnowledge() error = %v", err)
	}

	matches, err := ks.Search(context.Background(), "I1", 1, "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 || len(matches[0].Tags) == 0 {
		t.Fatalf("Search() = %+v, want one tagged match", matches)
	}
	matches[0].Tags[0] = "mutated"

	again, err := ks.Search(context.Background(), "I1", 1, "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if again[0].Tags[0] == "mutated" {
		t.Error("mutating a search result leaked into the store")
	}
}

func TestSearchEmbeddingFailure(t *testing.T) {
	embedder := newFakeEmbedder()
	embedder.failOn = "broken"
	ks := newTestStore(t, embedder)

	_, err := ks.Search(context.Background(), "broken query", 5, "")
	if !errors.Is(err, ErrEmbeddingFailed) {
		t.Errorf("Search() error = %v, want ErrEmbeddingFailed", err)
	}
}
