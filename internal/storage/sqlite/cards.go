// ABOUTME: Knowledge card persistence operations for SQLite
// ABOUTME: Stores embeddings as BLOBs and rejects duplicate ids
package sqlite

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

// ErrDuplicateCard is returned when inserting a card whose id already
// exists. The store never overwrites an existing card.
var ErrDuplicateCard = errors.New("duplicate card id")

// CardStore handles knowledge card persistence
type CardStore struct {
	db *DB
}

// NewCardStore creates a new CardStore
func NewCardStore(db *DB) *CardStore {
	return &CardStore{db: db}
}

// Insert persists one card with its embedding. A colliding id is rejected
// with ErrDuplicateCard rather than upserted.
func (s *CardStore) Insert(card *models.KnowledgeCard) error {
	if card.Content == "" {
		return fmt.Errorf("card %s has empty content", card.ID)
	}
	if !card.ContentType.Valid() {
		return fmt.Errorf("card %s has unknown content type %q", card.ID, card.ContentType)
	}

	tags, err := json.Marshal(card.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO cards (id, book_title, book_author, content_type, content, tags, embedding, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, card.ID, card.BookTitle, card.BookAuthor, string(card.ContentType),
		card.Content, string(tags), vectorToBlob(card.Embedding), card.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("card %s: %w", card.ID, ErrDuplicateCard)
		}
		return fmt.Errorf("failed to insert card: %w", err)
	}

	return nil
}

// Get retrieves a card by id, or nil if it does not exist
func (s *CardStore) Get(id string) (*models.KnowledgeCard, error) {
	row := s.db.QueryRow(`
		SELECT id, book_title, book_author, content_type, content, tags, embedding, created_at
		FROM cards
		WHERE id = ?
	`, id)

	card, err := scanCard(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

// Exists reports whether a card with the given id is already stored
func (s *CardStore) Exists(id string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM cards WHERE id = ?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check card existence: %w", err)
	}
	return n > 0, nil
}

// All returns every stored card in insertion order
func (s *CardStore) All() ([]models.KnowledgeCard, error) {
	rows, err := s.db.Query(`
		SELECT id, book_title, book_author, content_type, content, tags, embedding, created_at
		FROM cards
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cards []models.KnowledgeCard
	for rows.Next() {
		card, err := scanCard(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, *card)
	}

	return cards, rows.Err()
}

// Count returns the number of stored cards
func (s *CardStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return n, nil
}

// scanCard scans one card row using the given scan function
func scanCard(scan func(...interface{}) error) (*models.KnowledgeCard, error) {
	var (
		card        models.KnowledgeCard
		contentType string
		tags        sql.NullString
		blob        []byte
	)

	err := scan(&card.ID, &card.BookTitle, &card.BookAuthor, &contentType,
		&card.Content, &tags, &blob, &card.CreatedAt)
	if err != nil {
		return nil, err
	}

	card.ContentType = models.ContentType(contentType)
	card.Embedding = blobToVector(blob)
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &card.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}

	return &card, nil
}

// isUniqueViolation reports whether err is a primary key conflict.
// modernc.org/sqlite surfaces SQLITE_CONSTRAINT_PRIMARYKEY in the message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "constraint failed")
}

// vectorToBlob converts a float64 slice to a little-endian binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob back to a float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}
