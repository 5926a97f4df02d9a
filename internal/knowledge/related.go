// ABOUTME: Relationship engine inferring related books via shared nearest neighbors
// ABOUTME: A bounded heuristic over a fixed search window, not a graph traversal
package knowledge

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

// FindRelatedBooks probes the store with a synthetic query built from the
// book title and groups the nearest matches from other books. Books are
// ranked by how many matches they contribute inside the window, ties
// broken by first appearance in the ranked match list.
//
// The result is a heuristic proxy for relatedness bounded by the
// configured window size; it is not exhaustive.
func (ks *KnowledgeStore) FindRelatedBooks(ctx context.Context, bookTitle string, topN int) ([]models.RelatedBook, error) {
	if strings.TrimSpace(bookTitle) == "" || topN <= 0 {
		return []models.RelatedBook{}, nil
	}

	probe := ks.cfg.RelatedProbe
	if strings.Contains(probe, "%s") {
		probe = fmt.Sprintf(probe, bookTitle)
	} else {
		probe = probe + " " + bookTitle
	}

	matches, err := ks.Search(ctx, probe, ks.cfg.RelatedWindow, "")
	if err != nil {
		return nil, fmt.Errorf("relationship probe failed: %w", err)
	}

	grouped := make(map[string]*models.RelatedBook)
	firstSeen := make(map[string]int)

	for i, match := range matches {
		// No self-relations
		if match.BookTitle == bookTitle {
			continue
		}

		book, ok := grouped[match.BookTitle]
		if !ok {
			book = &models.RelatedBook{
				Title:  match.BookTitle,
				Author: match.BookAuthor,
			}
			grouped[match.BookTitle] = book
			firstSeen[match.BookTitle] = i
		}

		book.SharedConceptCount++
		if len(book.SampleConcepts) < ks.cfg.SampleConcepts {
			book.SampleConcepts = append(book.SampleConcepts, match.Content)
		}
	}

	related := make([]models.RelatedBook, 0, len(grouped))
	for _, book := range grouped {
		related = append(related, *book)
	}

	sort.SliceStable(related, func(i, j int) bool {
		if related[i].SharedConceptCount != related[j].SharedConceptCount {
			return related[i].SharedConceptCount > related[j].SharedConceptCount
		}
		return firstSeen[related[i].Title] < firstSeen[related[j].Title]
	})

	if len(related) > topN {
		related = related[:topN]
	}
	return related, nil
}
