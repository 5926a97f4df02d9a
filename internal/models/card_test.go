// ABOUTME: Tests for KnowledgeCard and content type validation
// ABOUTME: Covers embedding input construction and type checking
package models

import "testing"

func TestContentTypeValid(t *testing.T) {
	tests := []struct {
		ct    ContentType
		valid bool
	}{
		{ContentTypeInsight, true},
		{ContentTypeQuote, true},
		{ContentTypeConcept, true},
		{ContentTypeExample, true},
		{ContentType("summary"), false},
		{ContentType(""), false},
		{ContentType("Insight"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.ct), func(t *testing.T) {
			if got := tt.ct.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestEmbeddingInput(t *testing.T) {
	card := &KnowledgeCard{
		ContentType: ContentTypeInsight,
		Content:     "attention is a finite resource",
	}

	want := "insight: attention is a finite resource"
	if got := card.EmbeddingInput(); got != want {
		t.Errorf("EmbeddingInput() = %q, want %q", got, want)
	}
}

func TestEmbeddingInputDisambiguatesTypes(t *testing.T) {
	insight := &KnowledgeCard{ContentType: ContentTypeInsight, Content: "same words"}
	quote := &KnowledgeCard{ContentType: ContentTypeQuote, Content: "same words"}

	if insight.EmbeddingInput() == quote.EmbeddingInput() {
		t.Error("cards with identical content but different types should embed different inputs")
	}
}
