// ABOUTME: Query engine for semantic search over stored knowledge cards
// ABOUTME: Ranks by cosine distance ascending with insertion-order tie-breaking
package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

// Search embeds the query text and returns up to topK cards ranked by
// cosine distance, ascending. If typeFilter is non-empty, only cards of
// exactly that content type participate. An empty query, a topK of zero,
// or an empty (post-filter) store yields an empty result, not an error.
func (ks *KnowledgeStore) Search(ctx context.Context, query string, topK int, typeFilter models.ContentType) ([]models.SearchMatch, error) {
	if strings.TrimSpace(query) == "" || topK <= 0 {
		return []models.SearchMatch{}, nil
	}

	vector, err := ks.embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	ks.mu.RLock()
	defer ks.mu.RUnlock()

	if ks.closed {
		return nil, ErrStoreClosed
	}

	var filter func(id string) bool
	if typeFilter != "" {
		filter = func(id string) bool {
			return ks.byID[id].ContentType == typeFilter
		}
	}

	hits, err := ks.index.Search(vector, topK, filter)
	if err != nil {
		return nil, fmt.Errorf("index search failed: %w", err)
	}

	matches := make([]models.SearchMatch, 0, len(hits))
	for _, hit := range hits {
		card, ok := ks.byID[hit.ID]
		if !ok {
			continue
		}
		copied := cardCopy(card)
		matches = append(matches, models.SearchMatch{
			ID:          copied.ID,
			Content:     copied.Content,
			BookTitle:   copied.BookTitle,
			BookAuthor:  copied.BookAuthor,
			ContentType: copied.ContentType,
			Tags:        copied.Tags,
			CreatedAt:   copied.CreatedAt,
			Distance:    hit.Distance,
		})
	}

	return matches, nil
}
