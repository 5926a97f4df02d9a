// ABOUTME: Ingestion engine converting one book's analysis into knowledge cards
// ABOUTME: Cards are embedded and persisted one at a time, insight -> quote -> concept
package knowledge

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/liyoubang97-hub/deepread-app/internal/models"
	"github.com/liyoubang97-hub/deepread-app/internal/storage/sqlite"
)

// cardSpec is one pending card before embedding and id assignment
type cardSpec struct {
	contentType models.ContentType
	content     string
	tags        []string
	ordinal     int
}

// AddBookKnowledge ingests one book's analysis result, creating one card
// per insight, per quote, and per (branch, concept) pair, in that order.
// It returns the ids of all cards actually committed.
//
// Ingestion is not atomic across a book: an embedding failure or a
// duplicate id skips that single card and continues, while a storage
// write error aborts the rest of the book. In both cases the cards
// already committed stay committed, and the returned id list reflects
// exactly what was added.
func (ks *KnowledgeStore) AddBookKnowledge(ctx context.Context, title, author string, analysis *models.BookAnalysis) ([]string, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("book title is required")
	}
	if analysis == nil {
		analysis = &models.BookAnalysis{}
	}

	specs := buildCardSpecs(title, analysis)
	now := time.Now()

	cardIDs := []string{}
	skipped := 0

	for _, spec := range specs {
		if strings.TrimSpace(spec.content) == "" {
			continue
		}

		card := models.KnowledgeCard{
			ID:          newCardID(title, spec.contentType, spec.ordinal),
			BookTitle:   title,
			BookAuthor:  author,
			ContentType: spec.contentType,
			Content:     spec.content,
			Tags:        spec.tags,
			CreatedAt:   now,
		}

		// The embedding call is the slow part; it runs outside the lock
		// so readers are not starved by model latency.
		vector, err := ks.embed(ctx, card.EmbeddingInput())
		if err != nil {
			log.Printf("Warning: skipping card %s: %v", card.ID, err)
			skipped++
			continue
		}
		card.Embedding = vector

		if err := ks.commitCard(&card); err != nil {
			if errors.Is(err, sqlite.ErrDuplicateCard) {
				log.Printf("Warning: skipping card %s: %v", card.ID, err)
				skipped++
				continue
			}
			return cardIDs, fmt.Errorf("failed to persist card %s after %d committed: %w",
				card.ID, len(cardIDs), err)
		}

		cardIDs = append(cardIDs, card.ID)
	}

	if skipped > 0 {
		log.Printf("Added %d of %d cards for %q (%d skipped)", len(cardIDs), len(specs), title, skipped)
	}

	return cardIDs, nil
}

// commitCard persists a single card to the card store and vector index
// under the exclusive writer lock. The two structures move together:
// a reader can never observe a card in one but not the other.
func (ks *KnowledgeStore) commitCard(card *models.KnowledgeCard) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	if ks.closed {
		return ErrStoreClosed
	}

	if err := ks.cards.Insert(card); err != nil {
		return err
	}
	if err := ks.index.Insert(card.ID, card.Embedding); err != nil {
		return err
	}
	ks.byID[card.ID] = *card

	return nil
}

// buildCardSpecs expands an analysis into pending cards in ingestion
// order. Absent sections contribute nothing; they are never an error.
func buildCardSpecs(title string, analysis *models.BookAnalysis) []cardSpec {
	var specs []cardSpec

	for i, insight := range analysis.Insights {
		specs = append(specs, cardSpec{
			contentType: models.ContentTypeInsight,
			content:     insight,
			tags:        []string{title, "insight", "reflection"},
			ordinal:     i,
		})
	}

	for i, quote := range analysis.Quotes {
		specs = append(specs, cardSpec{
			contentType: models.ContentTypeQuote,
			content:     quote,
			tags:        []string{title, "quote", "shareable"},
			ordinal:     i,
		})
	}

	ordinal := 0
	for _, branch := range analysis.MindMap.Branches {
		for _, concept := range branch.Concepts {
			specs = append(specs, cardSpec{
				contentType: models.ContentTypeConcept,
				content:     fmt.Sprintf("%s: %s", branch.BranchName, concept),
				tags:        []string{title, "concept", branch.BranchName},
				ordinal:     ordinal,
			})
			ordinal++
		}
	}

	return specs
}

// newCardID builds a readable id from the title slug, content type and
// ordinal, plus a uuid fragment so repeat ingestions stay distinct.
func newCardID(title string, contentType models.ContentType, ordinal int) string {
	return fmt.Sprintf("%s_%s_%d_%s", slugify(title), contentType, ordinal, uuid.New().String()[:8])
}

// slugify lowercases the title and collapses non-alphanumeric runs to
// single underscores
func slugify(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r > 127:
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
