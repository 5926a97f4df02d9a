// ABOUTME: Exporter serializing the full card collection to grouped Markdown
// ABOUTME: Writes to a temp file and renames so failures never corrupt the target
package knowledge

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

// bookSection groups one book's cards by content type for rendering
type bookSection struct {
	title    string
	author   string
	insights []string
	quotes   []string
	concepts []string
}

// ExportMarkdown writes the entire knowledge base to a Markdown document
// at the given path and returns the path written. Books appear in the
// order their first card was inserted, so repeated exports of an
// unchanged store differ only in the timestamp line.
//
// The document is assembled in memory and moved into place atomically;
// on error the previous file at path, if any, is left untouched.
func (ks *KnowledgeStore) ExportMarkdown(path string) (string, error) {
	ks.mu.RLock()
	cards, err := ks.cards.All()
	closed := ks.closed
	ks.mu.RUnlock()

	if closed {
		return "", ErrStoreClosed
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to read cards: %v", ErrExportFailed, err)
	}

	doc := renderMarkdown(cards, time.Now())

	if err := writeFileAtomic(path, doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return path, nil
}

// renderMarkdown produces the export document: a title line, a timestamp
// line, then per-book sections in fixed insight/quote/concept order.
func renderMarkdown(cards []models.KnowledgeCard, now time.Time) []byte {
	sections := groupByBook(cards)

	var buf bytes.Buffer
	buf.WriteString("# My Knowledge Base\n\n")
	fmt.Fprintf(&buf, "Exported: %s\n\n", now.Format("2006-01-02 15:04:05"))
	buf.WriteString("---\n\n")

	for _, section := range sections {
		fmt.Fprintf(&buf, "## %s\n\n", section.title)
		fmt.Fprintf(&buf, "**Author**: %s\n\n", section.author)

		if len(section.insights) > 0 {
			buf.WriteString("### Insights\n\n")
			for _, insight := range section.insights {
				fmt.Fprintf(&buf, "- %s\n", insight)
			}
			buf.WriteString("\n")
		}

		if len(section.quotes) > 0 {
			buf.WriteString("### Quotes\n\n")
			for _, quote := range section.quotes {
				fmt.Fprintf(&buf, "> %s\n\n", quote)
			}
		}

		if len(section.concepts) > 0 {
			buf.WriteString("### Concepts\n\n")
			for _, concept := range section.concepts {
				fmt.Fprintf(&buf, "- %s\n", concept)
			}
			buf.WriteString("\n")
		}

		buf.WriteString("---\n\n")
	}

	return buf.Bytes()
}

// groupByBook groups cards by title, keeping books in the order their
// first card appears in the insertion-ordered scan.
func groupByBook(cards []models.KnowledgeCard) []*bookSection {
	var order []*bookSection
	byTitle := make(map[string]*bookSection)

	for _, card := range cards {
		section, ok := byTitle[card.BookTitle]
		if !ok {
			section = &bookSection{
				title:  card.BookTitle,
				author: card.BookAuthor,
			}
			byTitle[card.BookTitle] = section
			order = append(order, section)
		}

		switch card.ContentType {
		case models.ContentTypeInsight:
			section.insights = append(section.insights, card.Content)
		case models.ContentTypeQuote:
			section.quotes = append(section.quotes, card.Content)
		case models.ContentTypeConcept:
			section.concepts = append(section.concepts, card.Content)
		}
	}

	return order
}

// writeFileAtomic writes data to a temp file in path's directory and
// renames it over path, so a failed write never leaves a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to move export into place: %w", err)
	}
	return nil
}
