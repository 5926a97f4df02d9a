// ABOUTME: Search and relationship result structures for read operations
// ABOUTME: Results are copies of stored card data, never aliases into the store
package models

import "time"

// SearchMatch represents one ranked semantic search result.
// Distance is the raw cosine distance (0 = identical direction); it is
// exposed so callers can apply their own thresholds.
type SearchMatch struct {
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	BookTitle   string      `json:"book_title"`
	BookAuthor  string      `json:"book_author"`
	ContentType ContentType `json:"content_type"`
	Tags        []string    `json:"tags,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	Distance    float64     `json:"distance"`
}

// RelatedBook represents a book inferred to be related via shared
// nearest-neighbor matches. The count is bounded by the search window,
// so it is a heuristic signal, not an exhaustive tally.
type RelatedBook struct {
	Title              string   `json:"title"`
	Author             string   `json:"author"`
	SharedConceptCount int      `json:"shared_concept_count"`
	SampleConcepts     []string `json:"sample_concepts,omitempty"`
}
