// ABOUTME: KnowledgeStore owns the embedder, card store, and vector index
// ABOUTME: Explicit open/close lifecycle with reader/writer concurrency control
package knowledge

import (
	"context"
	"fmt"
	"sync"

	"github.com/liyoubang97-hub/deepread-app/internal/config"
	"github.com/liyoubang97-hub/deepread-app/internal/models"
	"github.com/liyoubang97-hub/deepread-app/internal/storage"
	"github.com/liyoubang97-hub/deepread-app/internal/storage/sqlite"
)

// Embedder turns text into a fixed-dimension vector. Implementations must
// be deterministic for a fixed model and input, and safe for concurrent
// use: one instance is constructed per process and shared by every
// component that embeds.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Dimension() int
}

// KnowledgeStore is the personal knowledge base: a durable, append-only
// collection of knowledge cards with semantic search, cross-book
// relationship discovery, and deterministic export.
//
// Writers hold the exclusive lock for the duration of persisting a single
// card, so readers observe either the pre-insert state or the fully
// committed card, never a partial write. Ingestion of a whole book is
// deliberately not atomic: committed cards from an in-flight ingestion
// are visible to readers.
type KnowledgeStore struct {
	cfg      *config.Config
	embedder Embedder
	db       *sqlite.DB
	cards    *sqlite.CardStore
	index    *storage.FlatIndex

	mu     sync.RWMutex
	byID   map[string]models.KnowledgeCard
	closed bool
}

// Open creates a knowledge store backed by the configured SQLite database,
// rebuilding the in-memory vector index from persisted cards.
func Open(cfg *config.Config, embedder Embedder) (*KnowledgeStore, error) {
	db, err := sqlite.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open card database: %w", err)
	}
	return newStore(cfg, embedder, db)
}

// OpenInMemory creates a knowledge store with no durable backing (for testing)
func OpenInMemory(cfg *config.Config, embedder Embedder) (*KnowledgeStore, error) {
	db, err := sqlite.OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStore(cfg, embedder, db)
}

func newStore(cfg *config.Config, embedder Embedder, db *sqlite.DB) (*KnowledgeStore, error) {
	if embedder == nil {
		_ = db.Close()
		return nil, fmt.Errorf("embedder is required")
	}
	if embedder.Dimension() != cfg.VectorDimension {
		_ = db.Close()
		return nil, fmt.Errorf("embedder dimension %d does not match configured dimension %d",
			embedder.Dimension(), cfg.VectorDimension)
	}

	ks := &KnowledgeStore{
		cfg:      cfg,
		embedder: embedder,
		db:       db,
		cards:    sqlite.NewCardStore(db),
		index:    storage.NewFlatIndex(cfg.VectorDimension),
		byID:     make(map[string]models.KnowledgeCard),
	}

	if err := ks.loadIndex(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return ks, nil
}

// loadIndex rebuilds the vector index and metadata map from the card table
func (ks *KnowledgeStore) loadIndex() error {
	cards, err := ks.cards.All()
	if err != nil {
		return fmt.Errorf("failed to load cards: %w", err)
	}

	for _, card := range cards {
		if err := ks.index.Insert(card.ID, card.Embedding); err != nil {
			return fmt.Errorf("failed to index card %s: %w", card.ID, err)
		}
		ks.byID[card.ID] = card
	}

	return nil
}

// Close releases the underlying database. The store must not be used
// afterwards.
func (ks *KnowledgeStore) Close() error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	if ks.closed {
		return nil
	}
	ks.closed = true
	return ks.db.Close()
}

// Count returns the number of stored cards
func (ks *KnowledgeStore) Count() (int, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	if ks.closed {
		return 0, ErrStoreClosed
	}
	return ks.cards.Count()
}

// embed runs one embedding call under the configured timeout and folds
// every failure mode, including expiry and a wrong-dimension response,
// into ErrEmbeddingFailed.
func (ks *KnowledgeStore) embed(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, ks.cfg.EmbedTimeout)
	defer cancel()

	vector, err := ks.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	if len(vector) != ks.cfg.VectorDimension {
		return nil, fmt.Errorf("%w: expected dimension %d, got %d",
			ErrEmbeddingFailed, ks.cfg.VectorDimension, len(vector))
	}
	return vector, nil
}

// cardCopy returns a copy of the stored card metadata so query results
// never alias store-owned data.
func cardCopy(card models.KnowledgeCard) models.KnowledgeCard {
	out := card
	out.Tags = append([]string(nil), card.Tags...)
	out.Embedding = nil
	return out
}
