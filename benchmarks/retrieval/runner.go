// ABOUTME: Benchmark runner executing search scenarios against a knowledge store
// ABOUTME: Ingests fixture books, runs queries, and scores the rankings

package retrieval

import (
	"context"
	"fmt"
	"time"

	"github.com/liyoubang97-hub/deepread-app/internal/knowledge"
	"github.com/liyoubang97-hub/deepread-app/internal/models"
)

// Scenario is one benchmark case: fixture books to ingest, a query to
// run, and the contents considered relevant for that query.
type Scenario struct {
	Name             string
	Books            []FixtureBook
	Query            string
	TopK             int
	RelevantContents []string
}

// FixtureBook is one book's analysis used as benchmark input
type FixtureBook struct {
	Title    string
	Author   string
	Analysis models.BookAnalysis
}

// Result holds the scored outcome of one scenario
type Result struct {
	Scenario  string
	Recall    float64
	Precision float64
	MRR       float64
	Details   []string
	Duration  time.Duration
}

// Runner executes benchmark scenarios against a fresh store per scenario
type Runner struct {
	factory StoreFactory
	metrics *MetricsCalculator
	verbose bool
}

// StoreFactory builds an isolated knowledge store for one scenario.
// Each scenario gets its own store so rankings never bleed across cases.
type StoreFactory func() (*knowledge.KnowledgeStore, error)

// NewRunner creates a benchmark runner
func NewRunner(factory StoreFactory, verbose bool) *Runner {
	return &Runner{
		factory: factory,
		metrics: NewMetricsCalculator(),
		verbose: verbose,
	}
}

// Run executes one scenario and scores the retrieved ranking
func (r *Runner) Run(ctx context.Context, scenario Scenario) (*Result, error) {
	store, err := r.factory()
	if err != nil {
		return nil, fmt.Errorf("failed to build store for scenario %q: %w", scenario.Name, err)
	}
	defer func() { _ = store.Close() }()

	start := time.Now()

	// Map relevant contents to card ids as they are ingested
	relevantSet := make(map[string]bool, len(scenario.RelevantContents))
	for _, content := range scenario.RelevantContents {
		relevantSet[content] = true
	}

	for _, book := range scenario.Books {
		analysis := book.Analysis
		if _, err := store.AddBookKnowledge(ctx, book.Title, book.Author, &analysis); err != nil {
			return nil, fmt.Errorf("failed to ingest fixture %q: %w", book.Title, err)
		}
	}

	topK := scenario.TopK
	if topK <= 0 {
		topK = 5
	}

	matches, err := store.Search(ctx, scenario.Query, topK, "")
	if err != nil {
		return nil, fmt.Errorf("search failed in scenario %q: %w", scenario.Name, err)
	}

	retrieved := make([]string, 0, len(matches))
	var relevant []string
	for _, match := range matches {
		retrieved = append(retrieved, match.ID)
		if relevantSet[match.Content] {
			relevant = append(relevant, match.ID)
		}
	}

	// Relevant cards the search never surfaced still count against recall;
	// they have no id in the ranking, so stand in with their content keys
	if len(relevant) < len(scenario.RelevantContents) {
		for content := range relevantSet {
			surfaced := false
			for _, match := range matches {
				if match.Content == content {
					surfaced = true
					break
				}
			}
			if !surfaced {
				relevant = append(relevant, "missing:"+content)
			}
		}
	}

	result := &Result{Scenario: scenario.Name, Duration: time.Since(start)}

	var detail string
	result.Recall, detail = r.metrics.RecallAtK(retrieved, relevant, topK)
	result.Details = append(result.Details, detail)
	result.Precision, detail = r.metrics.PrecisionAtK(retrieved, relevant, topK)
	result.Details = append(result.Details, detail)
	result.MRR, detail = r.metrics.ReciprocalRank(retrieved, relevant)
	result.Details = append(result.Details, detail)

	if r.verbose {
		fmt.Printf("[%s] recall=%.2f precision=%.2f mrr=%.2f (%s)\n",
			scenario.Name, result.Recall, result.Precision, result.MRR, result.Duration)
	}

	return result, nil
}
