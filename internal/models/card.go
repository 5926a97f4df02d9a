// ABOUTME: KnowledgeCard model and content type definitions
// ABOUTME: Cards are the atomic unit stored by the knowledge base
package models

import "time"

// ContentType classifies what kind of fragment a card captures
type ContentType string

const (
	ContentTypeInsight ContentType = "insight"
	ContentTypeQuote   ContentType = "quote"
	ContentTypeConcept ContentType = "concept"
	ContentTypeExample ContentType = "example"
)

// Valid reports whether ct is one of the known content types
func (ct ContentType) Valid() bool {
	switch ct {
	case ContentTypeInsight, ContentTypeQuote, ContentTypeConcept, ContentTypeExample:
		return true
	}
	return false
}

// KnowledgeCard represents one captured fragment of text tied to a book.
// Cards are append-only: once persisted, neither the content nor the
// embedding is ever mutated.
type KnowledgeCard struct {
	ID          string      `json:"id"`
	BookTitle   string      `json:"book_title"`
	BookAuthor  string      `json:"book_author"`
	ContentType ContentType `json:"content_type"`
	Content     string      `json:"content"`
	Tags        []string    `json:"tags,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	Embedding   []float64   `json:"embedding,omitempty"`
}

// EmbeddingInput returns the text a card's embedding is computed from.
// The content type is prefixed so that insights, quotes and concepts with
// identical wording still embed apart.
func (c *KnowledgeCard) EmbeddingInput() string {
	return string(c.ContentType) + ": " + c.Content
}
