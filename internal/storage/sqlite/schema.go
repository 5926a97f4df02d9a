// ABOUTME: SQLite schema for knowledge card storage
// ABOUTME: Cards table is append-only; rowid preserves insertion order
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Knowledge cards table. Append-only: no UPDATE or DELETE path exists.
-- The implicit rowid records insertion order and drives all stable
-- orderings (tie-breaking in search, book order in exports).
CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    book_title TEXT NOT NULL,
    book_author TEXT NOT NULL,
    content_type TEXT NOT NULL,
    content TEXT NOT NULL,
    tags TEXT,
    embedding BLOB NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_cards_book ON cards(book_title);
CREATE INDEX IF NOT EXISTS idx_cards_type ON cards(content_type);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
